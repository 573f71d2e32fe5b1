package models

// SaveDraftRequest is a full submission payload plus the caller-supplied
// draft identifier. The frontend derives the identifier itself (name +
// phone + timestamp), the server never generates one.
type SaveDraftRequest struct {
	Submission
	DraftID string `json:"draftId" validate:"required"`
	// The frontend has sent the operator under either key depending on
	// which screen saved the draft.
	OperadorBorrador string `json:"operadorBorrador"`
}

// Operator returns whichever operator field the payload carried.
func (r SaveDraftRequest) Operator() string {
	if r.Operador != "" {
		return r.Operador
	}
	return r.OperadorBorrador
}

// DraftSummary is one row of the drafts sheet as returned by list-drafts.
type DraftSummary struct {
	Operador         string `json:"operador"`
	FechaRegistro    string `json:"fechaRegistro"`
	Nombre           string `json:"nombre"`
	Apellidos        string `json:"apellidos"`
	Telefono         string `json:"telefono"`
	Correo           string `json:"correo"`
	DraftID          string `json:"draftId"`
	Timestamp        string `json:"timestamp"`
	OperadorBorrador string `json:"operadorBorrador"`
	JSONData         string `json:"jsonData"`
}

type SaveDraftResponse struct {
	Message   string `json:"message"`
	DraftID   string `json:"draftId"`
	Timestamp string `json:"timestamp"`
}

type ListDraftsResponse struct {
	Message string         `json:"message"`
	Drafts  []DraftSummary `json:"drafts"`
	Total   int            `json:"total"`
}
