// Package receipt projects finalized orders into printable documents.
package receipt

import (
	"log/slog"
	"strconv"
	"strings"

	"comanda/config"
	"comanda/internal/domain/entity"
	"comanda/internal/domain/service"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Params defines the parameters required for the receipt formatter.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	PaymentQR service.PaymentQRService `optional:"true"`
}

// Formatter implements service.ReceiptFormatter with the counter's ticket
// layout. The PIX block is appended only when a QR service is configured and
// the order pays through PIX.
type Formatter struct {
	business  config.BusinessConfig
	width     int
	logger    *slog.Logger
	paymentQR service.PaymentQRService
}

// New creates the formatter.
func New(params Params) service.ReceiptFormatter {
	width := 42
	if params.Config.Printer != nil && params.Config.Printer.ReceiptWidth > 0 {
		width = params.Config.Printer.ReceiptWidth
	}

	return &Formatter{
		business:  params.Config.Business,
		width:     width,
		logger:    params.Logger,
		paymentQR: params.PaymentQR,
	}
}

// Format implements service.ReceiptFormatter.
func (f *Formatter) Format(order *entity.Order) (*service.ReceiptDocument, error) {
	doc := &service.ReceiptDocument{
		BusinessName: f.business.Name,
		Tagline:      f.business.Tagline,
		OrderRef:     "#" + order.ShortID(),
		OrderType:    orderTypeLabel(order.Customer.OrderType),
		TableNumber:  order.Customer.TableNumber,
		IssuedAt:     order.CreatedAt,
		Customer:     customerLines(&order.Customer),
		Payment:      string(order.Customer.PaymentMethod),
		Observation:  order.Customer.Observation,
		Subtotal:     money(order.Subtotal()),
		Total:        money(order.Total),
		PaidStamp:    order.Customer.UsePaidStamp,
		Footer:       []string{"Obrigado pela preferência!"},
	}

	if order.Customer.OrderType == entity.OrderTypeDelivery {
		doc.DeliveryFee = money(order.Customer.EffectiveDeliveryFee())
	}

	for i := range order.Items {
		doc.Items = append(doc.Items, itemLine(&order.Items[i]))
	}

	if f.paymentQR != nil && order.Customer.PaymentMethod == entity.PaymentPix {
		payload, png, err := f.paymentQR.GeneratePaymentQR(order)
		if err != nil {
			// The ticket is still valid without the PIX block.
			f.logger.Warn("pix block skipped", slog.Any("error", err))
		} else {
			doc.PixPayload = payload
			doc.PixQR = png
		}
	}

	return doc, nil
}

// Render implements service.ReceiptFormatter. Produces the fixed-width text
// used by the spool fallback and by terminals without a bridge.
func (f *Formatter) Render(doc *service.ReceiptDocument) string {
	var b strings.Builder
	rule := strings.Repeat("-", f.width)

	b.WriteString(f.center(strings.ToUpper(doc.BusinessName)) + "\n")
	if doc.Tagline != "" {
		b.WriteString(f.center(doc.Tagline) + "\n")
	}
	b.WriteString(rule + "\n")

	header := "PEDIDO " + doc.OrderRef + " - " + doc.OrderType
	if doc.TableNumber != "" {
		header += " " + doc.TableNumber
	}
	b.WriteString(header + "\n")
	b.WriteString(doc.IssuedAt.Format("02/01/2006 15:04") + "\n")
	for _, line := range doc.Customer {
		b.WriteString(line + "\n")
	}
	b.WriteString(rule + "\n")

	for _, item := range doc.Items {
		name := strconv.Itoa(item.Quantity) + "x " + item.Name
		b.WriteString(f.padBetween(name, item.LineTotal) + "\n")
		if item.Packaging != "" {
			b.WriteString("   (" + item.Packaging + ")\n")
		}
		for _, delta := range item.Deltas {
			b.WriteString("   " + delta + "\n")
		}
		if item.Observation != "" {
			b.WriteString("   Obs: " + item.Observation + "\n")
		}
	}
	b.WriteString(rule + "\n")

	b.WriteString(f.padBetween("Subtotal", doc.Subtotal) + "\n")
	if doc.DeliveryFee != "" {
		b.WriteString(f.padBetween("Taxa de entrega", doc.DeliveryFee) + "\n")
	}
	b.WriteString(f.padBetween("TOTAL", doc.Total) + "\n")
	b.WriteString("Pagamento: " + doc.Payment + "\n")
	if doc.PaidStamp {
		b.WriteString(f.center("*** PAGO ***") + "\n")
	}
	if doc.Observation != "" {
		b.WriteString(rule + "\n")
		b.WriteString("Obs: " + doc.Observation + "\n")
	}
	if doc.PixPayload != "" {
		b.WriteString(rule + "\n")
		b.WriteString("PIX copia e cola:\n")
		b.WriteString(doc.PixPayload + "\n")
	}
	b.WriteString(rule + "\n")
	for _, line := range doc.Footer {
		b.WriteString(f.center(line) + "\n")
	}

	return b.String()
}

func itemLine(item *entity.CartItem) service.ReceiptItem {
	out := service.ReceiptItem{
		Quantity:    item.Quantity,
		Name:        item.Name,
		Packaging:   item.Packaging,
		Observation: item.Observation,
		LineTotal:   money(item.LineTotal()),
	}
	for _, removed := range item.RemovedIngredients {
		out.Deltas = append(out.Deltas, "- SEM "+strings.ToUpper(removed))
	}
	for _, added := range item.Additions {
		out.Deltas = append(out.Deltas, "+ COM "+strings.ToUpper(added))
	}

	return out
}

func customerLines(c *entity.CustomerInfo) []string {
	lines := []string{"Cliente: " + c.Name}
	if c.Phone != "" {
		lines = append(lines, "Fone: "+c.Phone)
	}
	if c.OrderType == entity.OrderTypeDelivery {
		address := c.Address
		if c.AddressNumber != "" {
			address += ", " + c.AddressNumber
		}
		lines = append(lines, "Entrega: "+address)
		if c.Reference != "" {
			lines = append(lines, "Ref: "+c.Reference)
		}
	}

	return lines
}

func orderTypeLabel(t entity.OrderType) string {
	switch t {
	case entity.OrderTypeTable:
		return "MESA"
	case entity.OrderTypeDelivery:
		return "ENTREGA"
	default:
		return "BALCÃO"
	}
}

func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

func (f *Formatter) center(s string) string {
	runes := []rune(s)
	if len(runes) >= f.width {
		return s
	}
	pad := (f.width - len(runes)) / 2

	return strings.Repeat(" ", pad) + s
}

func (f *Formatter) padBetween(left, right string) string {
	gap := f.width - len([]rune(left)) - len([]rune(right))
	if gap < 1 {
		gap = 1
	}

	return left + strings.Repeat(" ", gap) + right
}
