package passwordreset

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/chateaupet/petshop-api/internal/httperr"
)

// Fluxo em duas etapas: o pedido gera um token de uso único enviado por
// e-mail; a troca de senha consome o token. Token ausente ou vencido é
// rejeitado e o usuário volta para a primeira etapa.

const TokenTTL = 30 * time.Minute

type TokenStore interface {
	// Issue cria um token novo para o usuário.
	Issue(ctx context.Context, userID string) (string, error)

	// Consume devolve o dono do token e o invalida. Token desconhecido
	// ou expirado vira erro de negócio token_invalido.
	Consume(ctx context.Context, token string) (string, error)
}

// ------------------------------
// Redis
// ------------------------------

const tokenKeyPrefix = "chateau:reset:"

type RedisTokens struct {
	client *redis.Client
}

func NewRedisTokens(client *redis.Client) *RedisTokens {
	return &RedisTokens{client: client}
}

func (r *RedisTokens) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := r.client.Set(ctx, tokenKeyPrefix+token, userID, TokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (r *RedisTokens) Consume(ctx context.Context, token string) (string, error) {
	key := tokenKeyPrefix + token

	userID, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", httperr.ErrBusiness("token_invalido")
	}
	if err != nil {
		return "", err
	}

	// uso único
	r.client.Del(ctx, key)
	return userID, nil
}

// ------------------------------
// Memória (testes)
// ------------------------------

type memoryToken struct {
	userID    string
	expiresAt time.Time
}

type MemoryTokens struct {
	mu     sync.Mutex
	tokens map[string]memoryToken
}

func NewMemoryTokens() *MemoryTokens {
	return &MemoryTokens{tokens: make(map[string]memoryToken)}
}

func (m *MemoryTokens) Issue(_ context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.NewString()
	m.tokens[token] = memoryToken{userID: userID, expiresAt: time.Now().Add(TokenTTL)}
	return token, nil
}

func (m *MemoryTokens) Consume(_ context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.tokens[token]
	if !ok || time.Now().After(entry.expiresAt) {
		return "", httperr.ErrBusiness("token_invalido")
	}

	delete(m.tokens, token)
	return entry.userID, nil
}
