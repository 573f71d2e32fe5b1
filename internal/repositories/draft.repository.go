package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"server/internal/logger"
	. "server/internal/models"
	"server/internal/projection"
	"server/internal/sheets"
	"server/internal/utils"
)

// ErrDraftNotFound is returned by Load and Delete when no row carries the
// requested draft identifier.
var ErrDraftNotFound = errors.New("draft not found")

// DraftRepository is the draft lifecycle over the drafts sheet. Save is
// strictly append-only: the same draft identifier may accumulate several
// historical rows, and "current" means the most recently appended one.
type DraftRepository interface {
	Save(ctx context.Context, req *SaveDraftRequest, rawPayload []byte) (string, error)
	List(ctx context.Context) ([]DraftSummary, error)
	Load(ctx context.Context, draftID string) (map[string]any, error)
	Delete(ctx context.Context, draftID string) error
}

// draftRepository serializes its mutations behind a mutex so scan-then-
// delete cannot race another delete in this process. The Sheets API has
// no conditional delete, so concurrent writers in other processes can
// still invalidate a scanned row index.
type draftRepository struct {
	rows     sheets.RowStore
	sheet    string
	sheetGID int64
	mu       sync.Mutex
	log      logger.Logger
}

func NewDraft(rows sheets.RowStore, sheet string, sheetGID int64) DraftRepository {
	return &draftRepository{
		rows:     rows,
		sheet:    sheet,
		sheetGID: sheetGID,
		log:      logger.New("draftRepository"),
	}
}

// Save appends one draft row and returns the stamped timestamp. It never
// looks for an existing row with the same identifier.
func (r *draftRepository) Save(ctx context.Context, req *SaveDraftRequest, rawPayload []byte) (string, error) {
	log := r.log.Function("Save")

	timestamp := utils.FormatTimestamp(time.Now())
	row := projection.DraftRow(*req, timestamp, prettyJSON(rawPayload))

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.rows.Append(ctx, r.sheet, [][]interface{}{row}); err != nil {
		return "", log.Err("failed to append draft row", err, "draftID", req.DraftID)
	}

	return timestamp, nil
}

// List returns every draft summary, most recent first. Rows missing the
// identifier columns are skipped with a warning; timestamps that fail to
// parse sort as epoch zero.
func (r *draftRepository) List(ctx context.Context) ([]DraftSummary, error) {
	log := r.log.Function("List")

	rows, err := r.rows.ReadAll(ctx, r.sheet)
	if err != nil {
		return nil, log.Err("failed to read drafts sheet", err)
	}

	var drafts []DraftSummary
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= projection.DraftColID {
			log.Warn("skipping malformed draft row", "rowIndex", i, "columns", len(row))
			continue
		}

		drafts = append(drafts, DraftSummary{
			Operador:         cell(row, projection.DraftColOperator),
			FechaRegistro:    cell(row, projection.DraftColRegistration),
			Nombre:           cell(row, projection.DraftColFirstName),
			Apellidos:        cell(row, projection.DraftColLastName),
			Telefono:         cell(row, projection.DraftColPhone),
			Correo:           cell(row, projection.DraftColEmail),
			DraftID:          cell(row, projection.DraftColID),
			Timestamp:        cell(row, projection.DraftColTimestamp),
			OperadorBorrador: cell(row, projection.DraftColOperator),
			JSONData:         cell(row, projection.DraftColJSON),
		})
	}

	sort.SliceStable(drafts, func(i, j int) bool {
		return draftTime(drafts[i].Timestamp).After(draftTime(drafts[j].Timestamp))
	})

	return drafts, nil
}

// Load returns the parsed payload of the first row matching the draft
// identifier. With duplicate identifiers the first scan match wins, not
// necessarily the most recent row; only List orders by recency.
func (r *draftRepository) Load(ctx context.Context, draftID string) (map[string]any, error) {
	log := r.log.Function("Load")

	rows, err := r.rows.ReadAll(ctx, r.sheet)
	if err != nil {
		return nil, log.Err("failed to read drafts sheet", err)
	}

	for i := 1; i < len(rows); i++ {
		if cell(rows[i], projection.DraftColID) != draftID {
			continue
		}

		raw := cell(rows[i], projection.DraftColJSON)
		if raw == "" {
			continue
		}

		var payload map[string]any
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return nil, log.Err("failed to parse draft payload", err, "draftID", draftID)
		}

		return payload, nil
	}

	return nil, ErrDraftNotFound
}

// Delete removes exactly the first row matching the draft identifier by
// its row index.
func (r *draftRepository) Delete(ctx context.Context, draftID string) error {
	log := r.log.Function("Delete")

	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.rows.ReadAll(ctx, r.sheet)
	if err != nil {
		return log.Err("failed to read drafts sheet", err)
	}

	for i := 1; i < len(rows); i++ {
		if cell(rows[i], projection.DraftColID) != draftID {
			continue
		}

		if err := r.rows.DeleteRow(ctx, r.sheetGID, int64(i)); err != nil {
			return log.Err("failed to delete draft row", err, "draftID", draftID, "rowIndex", i)
		}

		return nil
	}

	return ErrDraftNotFound
}

func draftTime(timestamp string) time.Time {
	t, err := utils.ParseTimestamp(timestamp)
	if err != nil {
		return time.Unix(0, 0)
	}
	return t
}

// cell reads a column as a string, tolerating short rows and non-string
// values coming back from the API.
func cell(row []interface{}, index int) string {
	if index >= len(row) {
		return ""
	}
	if s, ok := row[index].(string); ok {
		return s
	}
	if row[index] == nil {
		return ""
	}
	return fmt.Sprint(row[index])
}

// prettyJSON re-indents the raw request payload the way the frontend
// expects to read it back.
func prettyJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
