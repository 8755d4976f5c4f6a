package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Nome  string `json:"nome"  validate:"required,min=2,max=120"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=4"`
	// Role defaults to "usuario" when omitted.
	Role string `json:"role" validate:"omitempty,oneof=admin usuario"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
