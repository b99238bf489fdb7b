package notify

import (
	"context"
	"database/sql"
	"log"

	"firebase.google.com/go/messaging"

	"rodaBack/internal/models"
)

// Notifier pushes a verification verdict to the driver's registered devices.
// It is an additive observer of the workflow: failures are logged and never
// block or roll back a transition.
type Notifier struct {
	Client *messaging.Client
	DB     *sql.DB
}

func NewNotifier(client *messaging.Client, db *sql.DB) *Notifier {
	return &Notifier{Client: client, DB: db}
}

var statusMessages = map[string][2]string{
	models.StatusAccepted: {"Solicitud aprobada", "Tu solicitud de conductor fue aprobada. ¡Bienvenido!"},
	models.StatusRejected: {"Solicitud rechazada", "Tu solicitud de conductor fue rechazada."},
}

// DriverProcessed notifies the driver about a status change. Only accept and
// reject verdicts produce a push; archiving is an internal operation.
func (n *Notifier) DriverProcessed(ctx context.Context, driverID, status string) {
	if n == nil || n.Client == nil {
		return
	}

	msg, ok := statusMessages[status]
	if !ok {
		return
	}

	tokens, err := n.tokensByDriver(ctx, driverID)
	if err != nil {
		log.Printf("Error fetching notify tokens for driver %s: %v", driverID, err)
		return
	}

	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: msg[0],
				Body:  msg[1],
			},
			Data: map[string]string{
				"status": status,
			},
		}
		if _, err := n.Client.Send(ctx, message); err != nil {
			log.Printf("Error sending notification to token %s: %v", token, err)
		}
	}
}

func (n *Notifier) tokensByDriver(ctx context.Context, driverID string) ([]string, error) {
	rows, err := n.DB.QueryContext(ctx, `SELECT token FROM notify_tokens WHERE driver_id = ?`, driverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
