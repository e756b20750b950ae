package services

import (
	"fmt"

	"wine-api/config"
	"wine-api/models"

	"gopkg.in/gomail.v2"
)

// NotifyHighValueMovement emails the configured recipients when a high value
// movement is recorded. Called from a goroutine after the movement is
// persisted; a mail failure is logged and never reaches the caller.
func NotifyHighValueMovement(movement models.Movement) {
	logger := config.GetLogger()

	if config.SMTPHost == "" || len(config.AlertEmails) == 0 {
		return
	}

	subject := "High value movement " + movement.BatchRef
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>High value movement recorded</h3>
				<p>Batch: <strong>%s</strong></p>
				<p>Type: %s, Quantity: %d</p>
				<p>Movement ID: %s</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, movement.BatchRef, movement.MovementType, movement.Quantity, movement.ID.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.AlertEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		config.LogError(logger, "services", "NotifyHighValueMovement", "send alert email", err)
		return
	}

	logger.WithField("batch_ref", movement.BatchRef).Info("high value movement alert sent")
}
