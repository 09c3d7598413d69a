// Package printer sends rendered receipts to the thermal print bridge, a
// small HTTP sidecar sitting next to the physical printer. When the bridge is
// unreachable the receipt degrades to a spool file so no ticket is ever lost.
package printer

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"comanda/config"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/service"
	"comanda/internal/errors"

	"go.uber.org/fx"
)

const defaultConnectTimeout = 3 * time.Second

// Params defines the parameters required for the printer service.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Formatter service.ReceiptFormatter
}

// Printer implements service.PrinterService. A nil printer config disables
// the bridge entirely; receipts then go straight to the spool.
type Printer struct {
	cfg       *config.PrinterConfig
	logger    *slog.Logger
	formatter service.ReceiptFormatter
	client    *http.Client
}

// New creates the printer service.
func New(params Params) service.PrinterService {
	timeout := defaultConnectTimeout
	if params.Config.Printer != nil && params.Config.Printer.ConnectTimeout > 0 {
		timeout = params.Config.Printer.ConnectTimeout
	}

	return &Printer{
		cfg:       params.Config.Printer,
		logger:    params.Logger,
		formatter: params.Formatter,
		client:    &http.Client{Timeout: timeout},
	}
}

// Connect implements service.PrinterService. It probes the bridge endpoint;
// any HTTP response counts as reachable.
func (p *Printer) Connect(ctx context.Context) bool {
	if !p.bridgeEnabled() {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.cfg.Endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return true
}

// PrintOrder implements service.PrinterService. The bridge is tried first;
// on failure the rendered ticket is spooled to disk. Only a double failure
// surfaces an error.
func (p *Printer) PrintOrder(ctx context.Context, order *entity.Order) error {
	doc, err := p.formatter.Format(order)
	if err != nil {
		return err
	}
	text := p.formatter.Render(doc)

	if p.bridgeEnabled() {
		err := p.sendToBridge(ctx, text)
		if err == nil {
			return nil
		}
		p.logger.Warn("print bridge failed, spooling",
			slog.String("order", order.ShortID()), slog.Any("error", err))
	}

	if err := p.spool(order, text); err != nil {
		return domainerrors.ErrPrintFailed.WithDetails(err.Error())
	}

	return nil
}

func (p *Printer) bridgeEnabled() bool {
	return p.cfg != nil && p.cfg.Enabled && p.cfg.Endpoint != ""
}

func (p *Printer) sendToBridge(ctx context.Context, text string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint, bytes.NewBufferString(text))
	if err != nil {
		return errors.Wrap(err, "build print request")
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send to print bridge")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("print bridge returned %d", resp.StatusCode)
	}

	return nil
}

func (p *Printer) spool(order *entity.Order, text string) error {
	dir := "spool"
	if p.cfg != nil && p.cfg.SpoolDir != "" {
		dir = p.cfg.SpoolDir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create spool dir")
	}

	name := order.CreatedAt.Format("20060102-150405") + "-" + order.ShortID() + ".txt"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
		return errors.Wrap(err, "write spool file")
	}

	return nil
}
