package handler

import (
	"errors"

	"github.com/DesVallees/VAQ-sub000/internal/model"
	"github.com/DesVallees/VAQ-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers for the flat content collections: articles, locations,
// pediatricians. Same CRUD shape as products minus the variant logic.

type ArticleHandler struct {
	service service.ArticleService
}

func NewArticleHandler(s service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: s}
}

func (h *ArticleHandler) GetArticles(c *fiber.Ctx) error {
	articles, err := h.service.GetAllArticles()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(articles)
}

func (h *ArticleHandler) GetArticle(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid article ID"})
	}
	article, err := h.service.GetArticle(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Article not found"})
	}
	return c.JSON(article)
}

func (h *ArticleHandler) CreateArticle(c *fiber.Ctx) error {
	var article model.Article
	if err := c.BodyParser(&article); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	created, err := h.service.CreateArticle(&article, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Article created", "data": created})
}

func (h *ArticleHandler) UpdateArticle(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid article ID"})
	}
	var article model.Article
	if err := c.BodyParser(&article); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	updated, err := h.service.UpdateArticle(id, &article, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Article not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Article updated", "data": updated})
}

func (h *ArticleHandler) DeleteArticle(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid article ID"})
	}
	if err := h.service.DeleteArticle(id, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Article not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Article deleted"})
}

type LocationHandler struct {
	service service.LocationService
}

func NewLocationHandler(s service.LocationService) *LocationHandler {
	return &LocationHandler{service: s}
}

func (h *LocationHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.service.GetAllLocations()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(locations)
}

func (h *LocationHandler) GetLocation(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid location ID"})
	}
	location, err := h.service.GetLocation(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Location not found"})
	}
	return c.JSON(location)
}

func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var location model.Location
	if err := c.BodyParser(&location); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	created, err := h.service.CreateLocation(&location, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Location created", "data": created})
}

func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid location ID"})
	}
	var location model.Location
	if err := c.BodyParser(&location); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	updated, err := h.service.UpdateLocation(id, &location, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Location not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Location updated", "data": updated})
}

func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid location ID"})
	}
	if err := h.service.DeleteLocation(id, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Location not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Location deleted"})
}

type PediatricianHandler struct {
	service service.PediatricianService
}

func NewPediatricianHandler(s service.PediatricianService) *PediatricianHandler {
	return &PediatricianHandler{service: s}
}

func (h *PediatricianHandler) GetPediatricians(c *fiber.Ctx) error {
	pediatricians, err := h.service.GetAllPediatricians()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(pediatricians)
}

func (h *PediatricianHandler) GetPediatrician(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pediatrician ID"})
	}
	pediatrician, err := h.service.GetPediatrician(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Pediatrician not found"})
	}
	return c.JSON(pediatrician)
}

func (h *PediatricianHandler) CreatePediatrician(c *fiber.Ctx) error {
	var pediatrician model.Pediatrician
	if err := c.BodyParser(&pediatrician); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	created, err := h.service.CreatePediatrician(&pediatrician, getUserID(c))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Pediatrician created", "data": created})
}

func (h *PediatricianHandler) UpdatePediatrician(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pediatrician ID"})
	}
	var pediatrician model.Pediatrician
	if err := c.BodyParser(&pediatrician); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	updated, err := h.service.UpdatePediatrician(id, &pediatrician, getUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrPediatricianNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Pediatrician not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Pediatrician updated", "data": updated})
}

func (h *PediatricianHandler) DeletePediatrician(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pediatrician ID"})
	}
	if err := h.service.DeletePediatrician(id, getUserID(c)); err != nil {
		if errors.Is(err, service.ErrPediatricianNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Pediatrician not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Pediatrician deleted"})
}
