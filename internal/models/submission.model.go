package models

// Submission is one enrollment form post. Field names mirror the frontend
// payload, which is in Spanish. Currency fields are `any` because the
// frontend sends them either as formatted strings ("$1,200") or as bare
// numbers; both pass through the normalizer untouched in the latter case.
type Submission struct {
	Operador       string `json:"operador"`
	FechaRegistro  string `json:"fechaRegistro"`
	TipoVenta      string `json:"tipoVenta"`
	ClaveSeguridad string `json:"claveSeguridad"`

	Nombre           string `json:"nombre" validate:"required"`
	Apellidos        string `json:"apellidos"`
	Sexo             string `json:"sexo"`
	Correo           string `json:"correo"`
	Telefono         string `json:"telefono"`
	Telefono2        string `json:"telefono2"`
	FechaNacimiento  string `json:"fechaNacimiento"`
	EstadoMigratorio string `json:"estadoMigratorio"`
	SSN              string `json:"ssn"`
	Ingresos         any    `json:"ingresos"`
	Ocupacion        string `json:"ocupación"`
	Nacionalidad     string `json:"nacionalidad"`
	Aplica           string `json:"aplica"`

	CantidadDependientes string `json:"cantidadDependientes"`

	PoBox           string `json:"poBox"`
	Direccion       string `json:"direccion"`
	CasaApartamento string `json:"casaApartamento"`
	Condado         string `json:"condado"`
	Ciudad          string `json:"ciudad"`
	Estado          string `json:"estado"`
	CodigoPostal    string `json:"codigoPostal"`

	Compania      string `json:"compania"`
	Plan          string `json:"plan"`
	CreditoFiscal any    `json:"creditoFiscal"`
	Prima         any    `json:"prima"`
	Link          string `json:"link"`
	Observaciones string `json:"observaciones"`

	Dependents []Dependent        `json:"dependents"`
	CignaPlans []SupplementalPlan `json:"cignaPlans"`

	MetodoPago        string       `json:"metodoPago"        validate:"omitempty,oneof=banco tarjeta"`
	PagoBanco         *BankPayment `json:"pagoBanco"         validate:"required_if=MetodoPago banco"`
	PagoTarjeta       *CardPayment `json:"pagoTarjeta"       validate:"required_if=MetodoPago tarjeta"`
	PagoObservaciones string       `json:"pagoObservaciones"`
}

// Address regroups the address parts for the normalizer.
func (s Submission) Address() Address {
	return Address{
		PoBox:           s.PoBox,
		Direccion:       s.Direccion,
		CasaApartamento: s.CasaApartamento,
		Condado:         s.Condado,
		Ciudad:          s.Ciudad,
		Estado:          s.Estado,
		CodigoPostal:    s.CodigoPostal,
	}
}

// FullName is the concatenated applicant name denormalized into plan and
// payment rows.
func (s Submission) FullName() string {
	return s.Nombre + " " + s.Apellidos
}

type Address struct {
	PoBox           string
	Direccion       string
	CasaApartamento string
	Condado         string
	Ciudad          string
	Estado          string
	CodigoPostal    string
}

type Dependent struct {
	Parentesco       string `json:"parentesco"`
	Nombre           string `json:"nombre"`
	Apellido         string `json:"apellido"`
	FechaNacimiento  string `json:"fechaNacimiento"`
	EstadoMigratorio string `json:"estadoMigratorio"`
	SSN              string `json:"ssn"`
	Aplica           string `json:"aplica"`
}

type SupplementalPlan struct {
	FechaNacimiento             string `json:"fechaNacimiento"`
	BeneficiarioNombre          string `json:"beneficiarioNombre"`
	BeneficiarioFechaNacimiento string `json:"beneficiarioFechaNacimiento"`
	BeneficiarioDireccion       string `json:"beneficiarioDireccion"`
	BeneficiarioRelacion        string `json:"beneficiarioRelacion"`
	Tipo                        string `json:"tipo"`
	CoberturaTipo               string `json:"coberturaTipo"`
	Beneficio                   string `json:"beneficio"`
	BeneficioDiario             any    `json:"beneficioDiario"`
	Deducible                   any    `json:"deducible"`
	Prima                       any    `json:"prima"`
	Comentarios                 string `json:"comentarios"`
}

type BankPayment struct {
	NumCuenta     string `json:"numCuenta"`
	NumRuta       string `json:"numRuta"`
	NombreBanco   string `json:"nombreBanco"`
	TitularCuenta string `json:"titularCuenta"`
	SocialCuenta  string `json:"socialCuenta"`
}

type CardPayment struct {
	NumTarjeta       string `json:"numTarjeta"`
	FechaVencimiento string `json:"fechaVencimiento"`
	TitularTarjeta   string `json:"titularTarjeta"`
	CVC              string `json:"cvc"`
}

type SubmitResponse struct {
	Message    string `json:"message"`
	ClientID   string `json:"clientId"`
	FolderName string `json:"folderName"`
}
