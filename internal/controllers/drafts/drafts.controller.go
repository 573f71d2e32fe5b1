package draftController

import (
	"context"

	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
)

type DraftController struct {
	drafts repositories.DraftRepository
	log    logger.Logger
}

func New(drafts repositories.DraftRepository) *DraftController {
	return &DraftController{
		drafts: drafts,
		log:    logger.New("DraftController"),
	}
}

// Save appends a new draft row and returns its timestamp. Re-saving an
// existing draft identifier appends another row rather than updating.
func (c *DraftController) Save(ctx context.Context, req *SaveDraftRequest, rawPayload []byte) (string, error) {
	timestamp, err := c.drafts.Save(ctx, req, rawPayload)
	if err != nil {
		return "", err
	}

	c.log.Function("Save").Info("draft saved", "draftID", req.DraftID)
	return timestamp, nil
}

func (c *DraftController) List(ctx context.Context) ([]DraftSummary, error) {
	return c.drafts.List(ctx)
}

func (c *DraftController) Load(ctx context.Context, draftID string) (map[string]any, error) {
	return c.drafts.Load(ctx, draftID)
}

func (c *DraftController) Delete(ctx context.Context, draftID string) error {
	if err := c.drafts.Delete(ctx, draftID); err != nil {
		return err
	}

	c.log.Function("Delete").Info("draft deleted", "draftID", draftID)
	return nil
}
