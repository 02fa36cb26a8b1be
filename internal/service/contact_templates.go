package service

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/zititex/zititex-api/internal/dto"
	"github.com/zititex/zititex-api/pkg/mailgun"
)

// Rendering of the two contact messages is a pure function of the submission;
// nothing here touches storage or the network.

var htmlSanitizer = bluemonday.StrictPolicy()

func composeAdminNotification(req dto.ContactRequest, adminEmail string) mailgun.Message {
	subject := fmt.Sprintf("Nuevo contacto de %s - Zititex", req.FullName)

	var text strings.Builder
	text.WriteString("Has recibido un nuevo mensaje desde el formulario de contacto:\n\n")
	text.WriteString("Nombre: ")
	text.WriteString(req.FullName)
	text.WriteString("\nEmail: ")
	text.WriteString(req.Email)
	text.WriteString("\nTeléfono: ")
	text.WriteString(req.Phone)
	if req.Company != "" {
		text.WriteString("\nEmpresa: ")
		text.WriteString(req.Company)
	}
	if req.ProductType != "" {
		text.WriteString("\nTipo de producto: ")
		text.WriteString(req.ProductType)
	}
	if req.Quantity != nil {
		text.WriteString(fmt.Sprintf("\nCantidad: %d", *req.Quantity))
	}
	text.WriteString("\n\nMensaje:\n")
	text.WriteString(req.Message)

	var html strings.Builder
	html.WriteString("<h2>Nuevo mensaje de contacto</h2>")
	writeHTMLField(&html, "Nombre", req.FullName)
	writeHTMLField(&html, "Email", req.Email)
	writeHTMLField(&html, "Teléfono", req.Phone)
	if req.Company != "" {
		writeHTMLField(&html, "Empresa", req.Company)
	}
	if req.ProductType != "" {
		writeHTMLField(&html, "Tipo de producto", req.ProductType)
	}
	if req.Quantity != nil {
		writeHTMLField(&html, "Cantidad", fmt.Sprintf("%d", *req.Quantity))
	}
	html.WriteString("<p><strong>Mensaje:</strong></p><p>")
	html.WriteString(htmlSanitizer.Sanitize(req.Message))
	html.WriteString("</p>")

	return mailgun.Message{
		To:      []string{adminEmail},
		Subject: subject,
		Text:    text.String(),
		HTML:    html.String(),
		ReplyTo: req.Email,
	}
}

func composeUserAcknowledgment(req dto.ContactRequest) mailgun.Message {
	text := fmt.Sprintf(
		"Hola %s,\n\nHemos recibido tu mensaje y te responderemos a la brevedad.\n\nGracias por contactar a Zititex.\n\nSaludos,\nEquipo Zititex",
		req.FullName,
	)

	html := fmt.Sprintf(
		"<p>Hola %s,</p><p>Hemos recibido tu mensaje y te responderemos a la brevedad.</p><p>Gracias por contactar a Zititex.</p><p>Saludos,<br>Equipo Zititex</p>",
		htmlSanitizer.Sanitize(req.FullName),
	)

	return mailgun.Message{
		To:      []string{req.Email},
		Subject: "Hemos recibido tu mensaje - Zititex",
		Text:    text,
		HTML:    html,
	}
}

func writeHTMLField(builder *strings.Builder, label, value string) {
	builder.WriteString("<p><strong>")
	builder.WriteString(label)
	builder.WriteString(":</strong> ")
	builder.WriteString(htmlSanitizer.Sanitize(value))
	builder.WriteString("</p>")
}
