// Package qrcode builds the PIX "copia e cola" payload (EMV BR Code) for an
// order total and renders it as a QR PNG.
package qrcode

import (
	"fmt"
	"strings"

	"comanda/config"
	"comanda/internal/domain/entity"
	"comanda/internal/errors"

	goqrcode "github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const defaultQRSize = 256

// Params defines the parameters required for the PIX QR service.
type Params struct {
	fx.In

	Config *config.Config
}

// Service implements service.PaymentQRService. Construction fails when no
// PIX key is configured; the caller then simply wires no QR service.
type Service struct {
	pix   config.PixConfig
	size  int
	level goqrcode.RecoveryLevel
}

// New creates the PIX QR service. Returns an error when the PIX section is
// missing or has no key.
func New(params Params) (*Service, error) {
	if params.Config.Pix == nil || params.Config.Pix.Key == "" {
		return nil, errors.New("pix key not configured")
	}

	size := defaultQRSize
	level := goqrcode.Medium
	if params.Config.QRCode != nil {
		if params.Config.QRCode.Size > 0 {
			size = params.Config.QRCode.Size
		}
		level = parseRecoveryLevel(params.Config.QRCode.ErrorCorrectionLevel)
	}

	return &Service{
		pix:   *params.Config.Pix,
		size:  size,
		level: level,
	}, nil
}

// GeneratePaymentQR implements service.PaymentQRService.
func (s *Service) GeneratePaymentQR(order *entity.Order) (string, []byte, error) {
	payload := s.buildPayload(order)

	png, err := goqrcode.Encode(payload, s.level, s.size)
	if err != nil {
		return "", nil, errors.Wrap(err, "encode pix qr")
	}

	return payload, png, nil
}

// buildPayload assembles the static EMV BR Code TLV string.
// Field layout follows the Banco Central do Brasil PIX manual:
// 00 format, 26 merchant account (GUI + key), 52 category, 53 currency (986),
// 54 amount, 58 country, 59 merchant name, 60 city, 62 additional data,
// 63 CRC16.
func (s *Service) buildPayload(order *entity.Order) string {
	account := tlv("00", "br.gov.bcb.pix") + tlv("01", s.pix.Key)

	var b strings.Builder
	b.WriteString(tlv("00", "01"))
	b.WriteString(tlv("26", account))
	b.WriteString(tlv("52", "0000"))
	b.WriteString(tlv("53", "986"))
	b.WriteString(tlv("54", order.Total.StringFixed(2)))
	b.WriteString(tlv("58", "BR"))
	b.WriteString(tlv("59", clampASCII(s.pix.MerchantName, 25)))
	b.WriteString(tlv("60", clampASCII(s.pix.City, 15)))
	b.WriteString(tlv("62", tlv("05", "PED"+order.ShortID())))
	b.WriteString("6304")

	payload := b.String()

	return payload + fmt.Sprintf("%04X", crc16(payload))
}

func tlv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// clampASCII strips non-ASCII runes (the EMV name and city fields are ASCII
// only) and truncates to the field limit.
func clampASCII(s string, limit int) string {
	var b strings.Builder
	for _, r := range s {
		if r > 0x7f {
			continue
		}
		b.WriteRune(r)
		if b.Len() == limit {
			break
		}
	}

	return b.String()
}

// crc16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF), the checksum the
// PIX payload carries in field 63.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}

func parseRecoveryLevel(level string) goqrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L", "LOW":
		return goqrcode.Low
	case "Q", "HIGH":
		return goqrcode.High
	case "H", "HIGHEST":
		return goqrcode.Highest
	default:
		return goqrcode.Medium
	}
}
