package render

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	"github.com/skip2/go-qrcode"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

var errTicketPayloadTooShort = errors.New("ticket payload shorter than nonce")

// TicketGenerator produces scannable PNG tickets for reservations. The QR
// payload is the reservation encoded as JSON and encrypted with AES-GCM, so
// a scanner without the shared secret learns nothing about the booking.
type TicketGenerator struct {
	secret []byte
}

func NewTicketGenerator(secret string) *TicketGenerator {
	hashed := sha256.Sum256([]byte(secret)) // normalize to 32 bytes
	return &TicketGenerator{secret: hashed[:]}
}

// TicketPNG renders the reservation as a 256x256 PNG QR code.
func (g *TicketGenerator) TicketPNG(reservation *domain.Reservation) ([]byte, error) {
	data, err := json.Marshal(reservation)
	if err != nil {
		return nil, err
	}

	encrypted, err := encryptAES(data, g.secret)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(encrypted, qrcode.Medium, 256)
}

// DecodePayload decrypts a scanned QR payload back into the reservation it
// was generated from.
func (g *TicketGenerator) DecodePayload(payload string) (*domain.Reservation, error) {
	data, err := decryptAES(payload, g.secret)
	if err != nil {
		return nil, err
	}

	var reservation domain.Reservation
	if err := json.Unmarshal(data, &reservation); err != nil {
		return nil, err
	}

	return &reservation, nil
}

func encryptAES(data []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
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

	ciphertext := gcm.Seal(nonce, nonce, data, nil)

	return base64.URLEncoding.EncodeToString(ciphertext), nil
}

func decryptAES(payload string, key []byte) ([]byte, error) {
	ciphertext, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errTicketPayloadTooShort
	}

	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]

	return gcm.Open(nil, nonce, sealed, nil)
}
