package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pocketlove/internal/models"
	"github.com/terraincognita07/pocketlove/internal/services"
)

type milestoneView struct {
	models.TimePassedEntry
	Elapsed services.ElapsedTime `json:"elapsed"`
}

func (handler *Handler) buildMilestoneViews(entries []models.TimePassedEntry) []milestoneView {
	now := handler.now()
	views := make([]milestoneView, 0, len(entries))
	for _, entry := range entries {
		elapsed, err := handler.milestoneService.Elapsed(entry, now)
		if err != nil {
			continue
		}
		views = append(views, milestoneView{TimePassedEntry: entry, Elapsed: elapsed})
	}
	return views
}

func (handler *Handler) ListMilestones(c *fiber.Ctx) error {
	profile, ok := currentProfile(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(handler.buildMilestoneViews(profile.TimePassedEntries))
}

func (handler *Handler) AddMilestone(c *fiber.Ctx) error {
	input := milestoneInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return respondServiceError(c, err)
	}

	profile, err := handler.milestoneService.Add(input.Title, input.Date, input.Time, handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(handler.buildMilestoneViews(profile.TimePassedEntries))
}

func (handler *Handler) DeleteMilestone(c *fiber.Ctx) error {
	profile, err := handler.milestoneService.Delete(c.Params("id"), handler.now())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(handler.buildMilestoneViews(profile.TimePassedEntries))
}
