package infrastructure

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Agurato/filmstore/internal/model"
)

// wrapError classifies a driver error into a model.StorageError
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	kind := model.StatementError
	if isConnectionError(err) {
		kind = model.ConnectionError
	}
	return &model.StorageError{Kind: kind, Op: op, Err: err}
}

func isConnectionError(err error) bool {
	var netErr net.Error
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, mongo.ErrClientDisconnected),
		errors.As(err, &netErr),
		mongo.IsNetworkError(err),
		mongo.IsTimeout(err):
		return true
	}
	// database/sql does not export its "database is closed" error
	return strings.Contains(err.Error(), "sql: database is closed")
}
