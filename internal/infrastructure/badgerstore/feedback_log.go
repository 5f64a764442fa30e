// Package badgerstore persiste el log de opiniones en una base embebida Badger.
// Todo el log vive bajo una sola llave como lista JSON: agregar es leer, concatenar
// y volver a escribir la lista completa dentro de una transacción.
package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
)

// FeedbackKey es la llave bajo la que se guarda la lista.
const FeedbackKey = "customerFeedback"

const maxConflictRetries = 5

var _ repository.FeedbackLog = (*FeedbackLog)(nil)

// FeedbackLog adaptador de repository.FeedbackLog sobre Badger.
type FeedbackLog struct {
	db *badger.DB
}

// Open abre (o crea) la base en path. Con path vacío la base vive solo en memoria.
func Open(path string) (*FeedbackLog, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("abrir badger: %w", err)
	}
	return &FeedbackLog{db: db}, nil
}

// NewFeedbackLog envuelve una base ya abierta.
func NewFeedbackLog(db *badger.DB) *FeedbackLog {
	return &FeedbackLog{db: db}
}

// Append lee la lista, agrega la entrada y la reescribe. Reintenta ante conflicto
// de transacción con otro Append concurrente.
func (l *FeedbackLog) Append(ctx context.Context, entry entity.Feedback) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = l.db.Update(func(txn *badger.Txn) error {
			list, err := readList(txn)
			if err != nil {
				return err
			}
			list = append(list, entry)
			raw, err := json.Marshal(list)
			if err != nil {
				return fmt.Errorf("serializar feedback: %w", err)
			}
			return txn.Set([]byte(FeedbackKey), raw)
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("append feedback: %w", err)
	}
	return nil
}

// ReadAll devuelve la lista completa (vacía si la llave no existe).
func (l *FeedbackLog) ReadAll(_ context.Context) ([]entity.Feedback, error) {
	var list []entity.Feedback
	err := l.db.View(func(txn *badger.Txn) error {
		var err error
		list, err = readList(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("leer feedback: %w", err)
	}
	if list == nil {
		list = []entity.Feedback{}
	}
	return list, nil
}

// Close cierra la base.
func (l *FeedbackLog) Close() error {
	return l.db.Close()
}

func readList(txn *badger.Txn) ([]entity.Feedback, error) {
	item, err := txn.Get([]byte(FeedbackKey))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	raw, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var list []entity.Feedback
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decodificar feedback: %w", err)
	}
	return list, nil
}
