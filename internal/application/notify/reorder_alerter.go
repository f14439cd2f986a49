package notify

import (
	"github.com/jcastellr/almacen-api/internal/domain/entity"
	"github.com/jcastellr/almacen-api/internal/domain/repository"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

// ReorderSubject asunto fijo de las alertas de re-orden.
const ReorderSubject = "Stock Re-Order Notification Alert"

// ReorderAlerter resuelve los destinatarios suscritos y encola la alerta.
// Implementa el puerto Notifier del orquestador de órdenes.
type ReorderAlerter struct {
	recipients repository.RecipientRepository
	dispatcher *Dispatcher
	log        *logger.Logger
}

// NewReorderAlerter construye el adaptador de alertas de re-orden.
func NewReorderAlerter(recipients repository.RecipientRepository, dispatcher *Dispatcher, log *logger.Logger) *ReorderAlerter {
	return &ReorderAlerter{recipients: recipients, dispatcher: dispatcher, log: log}
}

// ReorderAlert encola la alerta para todos los destinatarios registrados.
// Sin destinatarios configurados no hay nada que enviar.
func (a *ReorderAlerter) ReorderAlert(item entity.Item, remaining int) {
	recs, err := a.recipients.List()
	if err != nil {
		a.log.Warn().Err(err).Str("barcode", item.Barcode).Msg("no se pudieron cargar los destinatarios de alerta")
		return
	}
	if len(recs) == 0 {
		a.log.Debug().Str("barcode", item.Barcode).Msg("sin destinatarios configurados, alerta omitida")
		return
	}
	emails := make([]string, 0, len(recs))
	for _, r := range recs {
		emails = append(emails, r.Email)
	}
	a.dispatcher.Enqueue(Message{
		Recipients:    emails,
		Subject:       ReorderSubject,
		Barcode:       item.Barcode,
		Location:      item.Location,
		Specification: item.Specification,
		Remaining:     remaining,
	})
}
