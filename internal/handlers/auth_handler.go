package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chateaupet/petshop-api/internal/config"
	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/models"
	"github.com/chateaupet/petshop-api/internal/passwordreset"
	"github.com/chateaupet/petshop-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	resets passwordreset.TokenStore
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, resets passwordreset.TokenStore) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, resets: resets}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name            string `json:"nome_completo" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"senha" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmar_senha" binding:"required"`
	Phone           string `json:"telefone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"senha" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmar_senha" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if code, ok := validators.ValidateSignup(req.Name, req.Password, req.ConfirmPassword); !ok {
		httperr.BadRequest(c, code, signupMessage(code))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "email_invalido", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_ja_cadastrado", "Este e-mail já está cadastrado. Tente fazer login.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "falha_ao_criar_conta", "Erro ao criar conta.")
		return
	}

	profile := models.Profile{
		FullName:     strings.TrimSpace(req.Name),
		Phone:        req.Phone,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
	}

	if err := h.db.Create(&profile).Error; err != nil {
		httperr.Internal(c, "falha_ao_criar_conta", "Erro ao criar conta.")
		return
	}

	token, err := h.generateToken(&profile)
	if err != nil {
		httperr.Internal(c, "falha_ao_gerar_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":            profile.ID,
			"nome_completo": profile.FullName,
			"email":         profile.Email,
			"role":          profile.Role,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var profile models.Profile
	if err := h.db.Where("email = ?", email).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Email ou senha incorretos. Tente novamente.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno ao fazer login.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha incorretos. Tente novamente.")
		return
	}

	token, err := h.generateToken(&profile)
	if err != nil {
		httperr.Internal(c, "falha_ao_gerar_token", "Erro ao gerar sessão.")
		return
	}

	// O destino pós-login depende do papel: painel para admin, home
	// (ou a página guardada antes do login) para cliente.
	redirect := "/home"
	if profile.IsAdmin() {
		redirect = "/admin/dashboard"
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":            profile.ID,
			"nome_completo": profile.FullName,
			"email":         profile.Email,
			"role":          profile.Role,
		},
		"token":    token,
		"redirect": redirect,
	})
}

// ForgotPassword emite o token de redefinição. A resposta é a mesma com ou
// sem cadastro para não revelar quais e-mails existem.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var profile models.Profile
	if err := h.db.Where("email = ?", email).First(&profile).Error; err == nil {
		if token, err := h.resets.Issue(c.Request.Context(), profile.ID); err == nil {
			// TODO: trocar o log pelo disparo real de e-mail quando o
			// provedor SMTP da loja for definido.
			log.Printf("password reset para %s: token %s", email, token)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Se o e-mail estiver cadastrado, enviaremos as instruções de redefinição.",
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Password != req.ConfirmPassword {
		httperr.BadRequest(c, "senhas_diferentes", "As senhas não coincidem. Por favor, tente novamente.")
		return
	}

	userID, err := h.resets.Consume(c.Request.Context(), req.Token)
	if err != nil {
		if httperr.IsBusiness(err, "token_invalido") {
			httperr.BadRequest(c, "token_invalido", "Link de redefinição inválido ou expirado. Solicite um novo e-mail.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro ao redefinir senha.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao redefinir senha.")
		return
	}

	if err := h.db.Model(&models.Profile{}).
		Where("id = ?", userID).
		Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao redefinir senha.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha redefinida com sucesso! Faça login com a nova senha."})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  profile.ID,
		"role": profile.Role,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func signupMessage(code string) string {
	switch code {
	case "nome_obrigatorio":
		return "Por favor, preencha seu nome completo."
	case "senha_curta":
		return "Sua senha deve ter pelo menos 6 caracteres."
	case "senhas_diferentes":
		return "As senhas não coincidem. Por favor, tente novamente."
	}
	return "Dados de cadastro inválidos."
}
