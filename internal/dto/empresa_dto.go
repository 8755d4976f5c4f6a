package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SalvarEmpresaRequest is shared by POST /empresas and PUT /empresas/{id}.
type SalvarEmpresaRequest struct {
	Nome             string `json:"nome"              validate:"required,min=2,max=150"`
	CNPJ             string `json:"cnpj"              validate:"required,min=14,max=18"`
	Rua              string `json:"rua"               validate:"required"`
	Numero           string `json:"numero"            validate:"required"`
	Bairro           string `json:"bairro"            validate:"required"`
	Cidade           string `json:"cidade"            validate:"required"`
	Estado           string `json:"estado"            validate:"required,len=2"`
	CEP              string `json:"cep"               validate:"required,min=8,max=9"`
	RegimeTributario string `json:"regime_tributario" validate:"required,oneof='Simples Nacional' 'Lucro Presumido' 'Lucro Real'"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EmpresaResponse struct {
	ID               string `json:"id"`
	Nome             string `json:"nome"`
	CNPJ             string `json:"cnpj"`
	Rua              string `json:"rua"`
	Numero           string `json:"numero"`
	Bairro           string `json:"bairro"`
	Cidade           string `json:"cidade"`
	Estado           string `json:"estado"`
	CEP              string `json:"cep"`
	RegimeTributario string `json:"regime_tributario"`
	CreatedAt        string `json:"created_at"`
}
