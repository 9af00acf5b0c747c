package handler

import (
	"dsa-catalog/internal/dto"
	"dsa-catalog/internal/middleware"
	"dsa-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TopicHandler handles catalog HTTP requests. Errors are returned to the
// centralized middleware.ErrorHandler.
type TopicHandler struct {
	service service.TopicService
}

// NewTopicHandler creates a new TopicHandler instance
func NewTopicHandler(service service.TopicService) *TopicHandler {
	return &TopicHandler{
		service: service,
	}
}

// ListCategories godoc
// @Summary List categories
// @Description Returns every category in display order with its topic and quiz counts
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *TopicHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoryListResponse{Categories: categories})
}

// ListTopics godoc
// @Summary List topics
// @Description Returns a summary of every topic in catalog order
// @Tags topics
// @Produce json
// @Success 200 {object} dto.TopicListResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /topics [get]
func (h *TopicHandler) ListTopics(c *fiber.Ctx) error {
	topics, err := h.service.ListTopics(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(topics)
}

// GetTopic godoc
// @Summary Get a topic
// @Description Returns the full topic, including every present optional section and its quiz
// @Tags topics
// @Produce json
// @Param id path string true "Topic ID" example(binary-search)
// @Success 200 {object} dto.TopicResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /topics/{id} [get]
func (h *TopicHandler) GetTopic(c *fiber.Ctx) error {
	topic, err := h.service.GetTopic(c.UserContext(), middleware.TopicID(c))
	if err != nil {
		return err
	}
	return c.JSON(topic)
}

// GetTopicQuiz godoc
// @Summary Get a topic's quiz
// @Description Returns the multiple-choice questions of a topic; the list is empty when it has none
// @Tags topics
// @Produce json
// @Param id path string true "Topic ID" example(binary-search)
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /topics/{id}/quiz [get]
func (h *TopicHandler) GetTopicQuiz(c *fiber.Ctx) error {
	quiz, err := h.service.GetTopicQuiz(c.UserContext(), middleware.TopicID(c))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// GetCatalogReport godoc
// @Summary Validate the loaded catalog
// @Description Runs content validation over the served categories and topics
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.ValidationReportResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /catalog/report [get]
func (h *TopicHandler) GetCatalogReport(c *fiber.Ctx) error {
	report, err := h.service.ValidateCatalog(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// RegisterRoutes mounts the catalog routes on router.
func (h *TopicHandler) RegisterRoutes(router fiber.Router) {
	validate := middleware.NewValidationMiddleware()

	router.Get("/categories", h.ListCategories)
	router.Get("/topics", h.ListTopics)
	router.Get("/topics/:id", validate.ValidateTopicID(), h.GetTopic)
	router.Get("/topics/:id/quiz", validate.ValidateTopicID(), h.GetTopicQuiz)
	router.Get("/catalog/report", h.GetCatalogReport)
}
