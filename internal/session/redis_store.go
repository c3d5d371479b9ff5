package session

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"

	goredis "github.com/redis/go-redis/v9"

	domainerrors "kalasangha.client/internal/domain/errors"
	"kalasangha.client/pkg/redis"
)

// RedisStore keeps the token encrypted at rest in Redis, for shared dev
// environments where a plain file on disk is not acceptable.
type RedisStore struct {
	encryptionKey []byte
	key           string
}

var (
	setTokenValue = redis.Set
	getTokenValue = redis.Get
	delTokenValue = redis.Del
)

// NewRedisStore creates a redis-backed token store. profile namespaces the
// key so multiple admins can share one Redis.
func NewRedisStore(encryptionKeyHex, profile string) (*RedisStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	if profile == "" {
		profile = "default"
	}
	return &RedisStore{encryptionKey: key, key: "admin-token:" + profile}, nil
}

func (s *RedisStore) Save(ctx context.Context, token string) error {
	encrypted, err := s.encrypt([]byte(token))
	if err != nil {
		return err
	}
	return setTokenValue(ctx, s.key, encrypted, 0)
}

func (s *RedisStore) Load(ctx context.Context) (string, error) {
	encrypted, err := getTokenValue(ctx, s.key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", domainerrors.ErrNoToken
		}
		return "", err
	}

	token, err := s.decrypt(encrypted)
	if err != nil {
		return "", err
	}
	return string(token), nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return delTokenValue(ctx, s.key)
}

func (s *RedisStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *RedisStore) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
