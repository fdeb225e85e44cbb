// Package storage reads and writes whole record collections to named slots.
// Every mutation in this application reads the full collection, changes it in
// memory and writes the full collection back.
package storage

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-agenda/internal/alert"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore"
	"github.com/BruksfildServices01/estetica-agenda/internal/metrics"
)

const (
	SlotClients      = "estetica_clients_v1"
	SlotAppointments = "estetica_appointments_v1"
	SlotTheme        = "estetica_theme_mode"
	SlotAudit        = "estetica_audit_v1"
)

// WriteFailedMessage is the alert raised when the medium rejects a write.
const WriteFailedMessage = "Erro ao salvar dados. Verifique se o armazenamento está habilitado."

type Store struct {
	kv      slotstore.Store
	logger  *zap.Logger
	alerter alert.Alerter
	metrics *metrics.Metrics
}

// New wires the collection store. m may be nil.
func New(kv slotstore.Store, logger *zap.Logger, alerter alert.Alerter, m *metrics.Metrics) *Store {
	return &Store{kv: kv, logger: logger, alerter: alerter, metrics: m}
}

// Driver names the underlying medium.
func (s *Store) Driver() slotstore.Driver {
	return s.kv.Driver()
}

// ReadAll decodes the slot as a sequence of T. An empty, missing or corrupt
// slot reads as an empty sequence; the failure is only logged.
func ReadAll[T any](ctx context.Context, s *Store, slot string) []T {
	s.countRead(slot)

	raw, found, err := s.kv.Get(ctx, slot)
	if err != nil {
		s.readFailed(slot, err)
		return []T{}
	}
	if !found || raw == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.readFailed(slot, err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// WriteAll overwrites the slot with the full sequence. A rejected write is
// logged and alerted, never returned.
func WriteAll[T any](ctx context.Context, s *Store, slot string, items []T) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		s.writeFailed(ctx, slot, err)
		return
	}
	s.WriteString(ctx, slot, string(b))
}

// ReadString returns the raw slot content, found=false when unset or unreadable.
func (s *Store) ReadString(ctx context.Context, slot string) (string, bool) {
	s.countRead(slot)

	v, found, err := s.kv.Get(ctx, slot)
	if err != nil {
		s.readFailed(slot, err)
		return "", false
	}
	return v, found
}

// WriteString overwrites the raw slot content with the same failure handling
// as WriteAll.
func (s *Store) WriteString(ctx context.Context, slot, value string) {
	if s.metrics != nil {
		s.metrics.SlotWrites.WithLabelValues(slot).Inc()
	}
	if err := s.kv.Set(ctx, slot, value); err != nil {
		s.writeFailed(ctx, slot, err)
	}
}

func (s *Store) countRead(slot string) {
	if s.metrics != nil {
		s.metrics.SlotReads.WithLabelValues(slot).Inc()
	}
}

func (s *Store) readFailed(slot string, err error) {
	s.logger.Error("erro ao ler do armazenamento", zap.String("slot", slot), zap.Error(err))
	if s.metrics != nil {
		s.metrics.SlotReadFailures.WithLabelValues(slot).Inc()
	}
}

func (s *Store) writeFailed(ctx context.Context, slot string, err error) {
	s.logger.Error("erro ao salvar no armazenamento", zap.String("slot", slot), zap.Error(err))
	if s.metrics != nil {
		s.metrics.SlotWriteFailures.WithLabelValues(slot).Inc()
	}
	s.alerter.Alert(ctx, WriteFailedMessage)
}
