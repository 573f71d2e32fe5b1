// Package projection turns one validated submission into the positional
// row-sets the destination sheets expect. Column order is the schema:
// the sheets are addressed by index, never by header.
package projection

import (
	"strings"
	"time"

	. "server/internal/models"
	"server/internal/utils"
)

// Row is one positional sheet row.
type Row = []interface{}

// Rows holds the projected row-sets for one submission. Payment is nil
// when no payment method was declared.
type Rows struct {
	Policy  []Row
	Plans   []Row
	Payment Row
}

// Draft sheet column indices for the trailing bookkeeping columns. The
// leading columns share the policy-row schema.
const (
	DraftColOperator      = 0
	DraftColRegistration  = 1
	DraftColFirstName     = 5
	DraftColLastName      = 6
	DraftColEmail         = 8
	DraftColPhone         = 9
	DraftColID            = 26
	DraftColTimestamp     = 27
	DraftColJSON          = 28
)

// Project maps a submission to its policy, plan, and payment rows, all
// tagged with the same client identifier.
func Project(sub Submission, clientID string, now time.Time) Rows {
	return Rows{
		Policy:  PolicyRows(sub, clientID),
		Plans:   PlanRows(sub, clientID, now),
		Payment: PaymentRow(sub, clientID),
	}
}

// PolicyRows emits the primary applicant tagged "Titular" followed by one
// row per dependent. Dependent rows keep the exact column positions of
// the titular row with the financial, plan, and contact columns blank.
func PolicyRows(sub Submission, clientID string) []Row {
	rows := []Row{append(titularColumns(sub, sub.Operador), clientID)}

	for _, dep := range sub.Dependents {
		rows = append(rows, Row{
			sub.Operador,
			sub.FechaRegistro,
			sub.TipoVenta,
			sub.ClaveSeguridad,
			dep.Parentesco,
			dep.Nombre,
			dep.Apellido,
			"", "", "", "",
			dep.FechaNacimiento,
			dep.EstadoMigratorio,
			dep.SSN,
			"", "", "", dep.Aplica,
			"", "", "", "", "", "", "", "",
			clientID,
		})
	}

	return rows
}

// PlanRows emits one row per supplemental plan, each denormalizing the
// applicant's contact details next to the plan fields.
func PlanRows(sub Submission, clientID string, now time.Time) []Row {
	var rows []Row
	for _, p := range sub.CignaPlans {
		rows = append(rows, Row{
			clientID,
			utils.FormatShortDate(now),
			sub.FullName(),
			sub.Telefono,
			sub.Sexo,
			p.FechaNacimiento,
			utils.ComposeAddress(sub.Address()),
			sub.Correo,
			sub.EstadoMigratorio,
			sub.SSN,
			beneficiary(p),
			p.Tipo,
			p.CoberturaTipo,
			p.Beneficio,
			money(p.BeneficioDiario),
			money(p.Deducible),
			money(p.Prima),
			p.Comentarios,
		})
	}
	return rows
}

// beneficiary joins the four beneficiary sub-fields with " / ". Absent
// sub-fields stay empty but keep their delimiter slot so the column still
// splits positionally downstream.
func beneficiary(p SupplementalPlan) string {
	return strings.Join([]string{
		p.BeneficiarioNombre,
		p.BeneficiarioFechaNacimiento,
		p.BeneficiarioDireccion,
		p.BeneficiarioRelacion,
	}, " / ")
}

// PaymentRow emits the single payment row, or nil when the submission
// declares no payment method. The trailing columns are the variant for
// the declared method; the card variant carries an empty column so both
// variants share observations at the same index.
func PaymentRow(sub Submission, clientID string) Row {
	if sub.MetodoPago == "" {
		return nil
	}

	row := Row{
		clientID,
		sub.FullName(),
		sub.Telefono,
		sub.MetodoPago,
	}

	obs := sub.PagoObservaciones
	if obs == "" {
		obs = sub.Observaciones
	}

	switch {
	case sub.MetodoPago == "banco" && sub.PagoBanco != nil:
		row = append(row,
			sub.PagoBanco.NumCuenta,
			sub.PagoBanco.NumRuta,
			sub.PagoBanco.NombreBanco,
			sub.PagoBanco.TitularCuenta,
			sub.PagoBanco.SocialCuenta,
			obs,
		)
	case sub.MetodoPago == "tarjeta" && sub.PagoTarjeta != nil:
		row = append(row,
			sub.PagoTarjeta.NumTarjeta,
			sub.PagoTarjeta.FechaVencimiento,
			sub.PagoTarjeta.TitularTarjeta,
			sub.PagoTarjeta.CVC,
			"",
			obs,
		)
	}

	return row
}

// DraftRow extends the titular policy columns with the draft identifier,
// the audit timestamp, and the raw JSON serialization of the payload.
func DraftRow(req SaveDraftRequest, timestamp, rawJSON string) Row {
	return append(
		titularColumns(req.Submission, req.Operator()),
		req.DraftID,
		timestamp,
		rawJSON,
	)
}

// titularColumns builds the shared leading columns of policy and draft
// rows for the primary applicant.
func titularColumns(sub Submission, operator string) Row {
	depCount := sub.CantidadDependientes
	if depCount == "" {
		depCount = "0"
	}

	return Row{
		operator,
		sub.FechaRegistro,
		sub.TipoVenta,
		sub.ClaveSeguridad,
		"Titular",
		sub.Nombre,
		sub.Apellidos,
		sub.Sexo,
		sub.Correo,
		sub.Telefono,
		sub.Telefono2,
		sub.FechaNacimiento,
		sub.EstadoMigratorio,
		sub.SSN,
		money(sub.Ingresos),
		sub.Ocupacion,
		sub.Nacionalidad,
		sub.Aplica,
		depCount,
		utils.ComposeAddress(sub.Address()),
		sub.Compania,
		sub.Plan,
		money(sub.CreditoFiscal),
		money(sub.Prima),
		sub.Link,
		sub.Observaciones,
	}
}

// money normalizes a currency field for a row cell: absent values render
// as empty string, everything else goes through the currency cleaner.
func money(v any) any {
	cleaned := utils.CleanCurrency(v)
	if cleaned == nil {
		return ""
	}
	return cleaned
}
