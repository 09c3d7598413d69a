package qrcode

import (
	"fmt"
	"strings"
	"testing"

	"comanda/config"
	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg := &config.Config{}
	cfg.Pix = &config.PixConfig{
		Key:          "+5511999990000",
		MerchantName: "Cantinho da Sandra",
		City:         "Sao Paulo",
	}
	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}

	svc, err := New(Params{Config: cfg})
	require.NoError(t, err)

	return svc
}

func TestNew_RequiresPixKey(t *testing.T) {
	_, err := New(Params{Config: &config.Config{}})
	assert.Error(t, err)
}

func TestGeneratePaymentQR_PayloadStructure(t *testing.T) {
	svc := newTestService(t)

	order := &entity.Order{
		ID:    uuid.MustParse("3b241101-e2bb-4255-8caf-4136c566a962"),
		Total: decimal.NewFromFloat(23.50),
	}

	payload, png, err := svc.GeneratePaymentQR(order)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	assert.True(t, strings.HasPrefix(payload, "000201"), "payload: %s", payload)
	assert.Contains(t, payload, "br.gov.bcb.pix")
	assert.Contains(t, payload, "+5511999990000")
	assert.Contains(t, payload, "540523.50")
	assert.Contains(t, payload, "5802BR")
	assert.Contains(t, payload, "PEDa962")

	// The last eight characters are "6304" plus the CRC over everything before it.
	require.Greater(t, len(payload), 8)
	body := payload[:len(payload)-4]
	assert.True(t, strings.HasSuffix(body, "6304"))
	assert.Equal(t, fmt.Sprintf("%04X", crc16(body)), payload[len(payload)-4:])
}

func TestCRC16_KnownVector(t *testing.T) {
	// CRC-16/CCITT-FALSE of "123456789" is 0x29B1.
	assert.Equal(t, uint16(0x29B1), crc16("123456789"))
}

func TestClampASCII(t *testing.T) {
	assert.Equal(t, "Aa do Joo", clampASCII("Açaí do João", 25))
	assert.Equal(t, "abcde", clampASCII("abcdefgh", 5))
}
