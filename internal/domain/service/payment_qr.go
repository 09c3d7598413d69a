package service

import "comanda/internal/domain/entity"

// PaymentQRService builds the PIX payment block printed on receipts when the
// order was paid (or will be paid) through PIX.
type PaymentQRService interface {
	// GeneratePaymentQR returns the copy-paste PIX payload for the order
	// total and its QR code rendered as a PNG.
	GeneratePaymentQR(order *entity.Order) (payload string, png []byte, err error)
}
