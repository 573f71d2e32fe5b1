package submissionController

import (
	"context"
	"fmt"
	"strings"
	"time"

	"server/config"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/projection"
	"server/internal/sheets"
	"server/internal/utils"
)

type SubmissionController struct {
	rows   sheets.RowStore
	config config.Config
	log    logger.Logger
}

func New(rows sheets.RowStore, config config.Config) *SubmissionController {
	return &SubmissionController{
		rows:   rows,
		config: config,
		log:    logger.New("SubmissionController"),
	}
}

// Submit projects the submission into its row-sets and appends them to
// the destination sheets: policy rows always, plan and payment rows only
// when present. The appends run sequentially and there is no rollback; a
// failure after the first append leaves the submission partially
// persisted and surfaces the error.
func (c *SubmissionController) Submit(ctx context.Context, sub Submission) (string, string, error) {
	log := c.log.Function("Submit")

	clientID := utils.NewClientID()
	rows := projection.Project(sub, clientID, time.Now())

	if err := c.rows.Append(ctx, c.config.SheetPolicies, rows.Policy); err != nil {
		return "", "", log.Err("failed to append policy rows", err, "clientID", clientID)
	}
	log.Info("policy rows saved", "clientID", clientID, "rows", len(rows.Policy))

	if len(rows.Plans) > 0 {
		if err := c.rows.Append(ctx, c.config.SheetPlans, rows.Plans); err != nil {
			return "", "", log.Err("failed to append plan rows", err, "clientID", clientID)
		}
		log.Info("plan rows saved", "clientID", clientID, "rows", len(rows.Plans))
	}

	if rows.Payment != nil {
		if err := c.rows.Append(ctx, c.config.SheetPayments, [][]interface{}{rows.Payment}); err != nil {
			return "", "", log.Err("failed to append payment row", err, "clientID", clientID)
		}
		log.Info("payment row saved", "clientID", clientID)
	}

	folderName := strings.TrimSpace(fmt.Sprintf("%s %s %s", sub.Nombre, sub.Apellidos, sub.Telefono))

	return clientID, folderName, nil
}
