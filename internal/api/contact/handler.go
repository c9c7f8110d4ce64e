package contactapi

import (
	"fmt"
	"log"
	"net/http"

	"publisher-app/config"
	"publisher-app/database"
	"publisher-app/internal/domain/contact"
	"publisher-app/internal/infra/resend"

	"github.com/gin-gonic/gin"
)

type ContactFormRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// POST /contact
//
// Received -> Validated -> Persisted (best effort) -> Notified (fatal on
// failure) -> Confirmed (best effort) -> Responded. No retries, no
// queueing: the admin notification is the success signal.
func Submit(c *gin.Context) {
	var req ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}

	// Best-effort persistence: a database failure must not stop the
	// notification email.
	row := contact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   phone,
		Subject: req.Subject,
		Message: req.Message,
		IsRead:  false,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		log.Println("Failed to save contact message:", err)
	}

	mailer := resend.NewClient(config.RESEND_BASE_URL, config.RESEND_API_KEY)
	ctx := c.Request.Context()

	if err := mailer.Send(ctx, resend.Message{
		From:    config.CONTACT_FROM,
		To:      []string{config.CONTACT_RECIPIENT},
		Subject: "[LDP Publisher] " + req.Subject,
		Text:    notificationText(req),
		ReplyTo: req.Email,
	}); err != nil {
		log.Println("Failed to send notification email:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Gagal mengirim email. Silakan coba lagi nanti."})
		return
	}

	// The sender confirmation never changes the outcome; the caller has
	// already succeeded once the notification went out.
	if err := mailer.Send(ctx, resend.Message{
		From:    config.CONTACT_FROM,
		To:      []string{req.Email},
		Subject: "Terima Kasih atas Pesan Anda - LDP Publisher",
		HTML:    confirmationHTML(req),
	}); err != nil {
		log.Println("Failed to send confirmation email:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pesan berhasil dikirim! Kami akan segera menghubungi Anda.",
	})
}

func notificationText(req ContactFormRequest) string {
	phone := req.Phone
	if phone == "" {
		phone = "Tidak disertakan"
	}
	return fmt.Sprintf(`Pesan Baru dari Website LDP Publisher

Dari: %s
Email: %s
Telepon: %s
Subjek: %s

Pesan:
%s

---
Pesan ini dikirim dari form kontak website LDP Publisher`,
		req.Name, req.Email, phone, req.Subject, req.Message)
}

func confirmationHTML(req ContactFormRequest) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #1e3a5f;">LDP Publisher</h1>
  <h2>Terima Kasih, %s!</h2>
  <p>Kami telah menerima pesan Anda dan akan segera menghubungi Anda.</p>
  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px;">
    <p><strong>Subjek:</strong> %s</p>
    <p><strong>Pesan:</strong></p>
    <p style="white-space: pre-wrap; color: #555;">%s</p>
  </div>
  <p>Tim kami biasanya merespons dalam waktu 1-2 hari kerja.</p>
  <p>Salam hangat,<br><strong>Tim LDP Publisher</strong></p>
</body>
</html>`, req.Name, req.Subject, req.Message)
}
