package email

import (
	"fmt"
	"time"
)

const appName = "Turnos"

// BookingConfirmation creates the confirmation message sent after a session is booked.
func BookingConfirmation(to string, name string, start, end time.Time, modality string) Message {
	patient := name
	if patient == "" {
		patient = "paciente"
	}

	subject := fmt.Sprintf("Tu sesión del %s está confirmada", start.Format("02/01/2006"))

	textBody := fmt.Sprintf(`Hola %s,

Tu sesión fue reservada con éxito.

Fecha: %s
Horario: %s a %s
Modalidad: %s

Si necesitás cancelar o reprogramar, podés hacerlo desde la sección "Mis sesiones".

Gracias,
El equipo de %s`,
		patient,
		start.Format("Monday 02/01/2006"),
		start.Format("15:04"),
		end.Format("15:04"),
		modalityLabel(modality),
		appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hola %s,</h2>
    <p>Tu sesión fue reservada con éxito.</p>
    <p style="background-color: #f3f4f6; padding: 15px 20px; border-radius: 6px;">
        <strong>Fecha:</strong> %s<br>
        <strong>Horario:</strong> %s a %s<br>
        <strong>Modalidad:</strong> %s
    </p>
    <p>Si necesitás cancelar o reprogramar, podés hacerlo desde la sección <em>Mis sesiones</em>.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Gracias,<br>El equipo de %s</p>
</body>
</html>`,
		patient,
		start.Format("02/01/2006"),
		start.Format("15:04"),
		end.Format("15:04"),
		modalityLabel(modality),
		appName)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// CancellationNotice creates the message sent after a session is cancelled.
func CancellationNotice(to string, name string, start time.Time) Message {
	patient := name
	if patient == "" {
		patient = "paciente"
	}

	subject := fmt.Sprintf("Tu sesión del %s fue cancelada", start.Format("02/01/2006"))

	textBody := fmt.Sprintf(`Hola %s,

Tu sesión del %s a las %s fue cancelada.

El horario quedó liberado. Podés reservar una nueva sesión cuando quieras.

Gracias,
El equipo de %s`,
		patient,
		start.Format("02/01/2006"),
		start.Format("15:04"),
		appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hola %s,</h2>
    <p>Tu sesión del <strong>%s</strong> a las <strong>%s</strong> fue cancelada.</p>
    <p>El horario quedó liberado. Podés reservar una nueva sesión cuando quieras.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Gracias,<br>El equipo de %s</p>
</body>
</html>`,
		patient,
		start.Format("02/01/2006"),
		start.Format("15:04"),
		appName)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

func modalityLabel(m string) string {
	switch m {
	case "online":
		return "Online"
	case "in_person":
		return "Presencial"
	default:
		return m
	}
}
