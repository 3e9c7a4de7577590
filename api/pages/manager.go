package pages

import (
	"net/http"
	"storefront_server/lib"
	"storefront_server/services"
	"storefront_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// PagesRoutesManager serves the storefront's informational pages and the
// contact form.
type PagesRoutesManager struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	emailService *services.EmailService
}

func NewPagesRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	emailService *services.EmailService,
) *PagesRoutesManager {
	return &PagesRoutesManager{
		logger:       logger,
		cfg:          cfg,
		emailService: emailService,
	}
}

func (prm *PagesRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/about", prm.GetAbout)
	r.Get("/contact", prm.GetContact)
	r.Post("/contact", prm.SubmitContact)
}

func (prm *PagesRoutesManager) GetAbout(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"name":    prm.cfg.Server.AppName,
			"tagline": "Everyday goods, carefully made.",
			"story":   "We started as a weekend market stall and grew into a small online storefront. Every product in the catalog is something we use ourselves.",
		}),
		gecho.Send(),
	)
}

func (prm *PagesRoutesManager) GetContact(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"email": prm.cfg.Email.ContactTo,
			"hours": "Mon-Fri 9:00-17:00",
		}),
		gecho.Send(),
	)
}

// SubmitContact relays a contact form submission to the shop inbox when
// email is configured; otherwise it only logs the message.
func (prm *PagesRoutesManager) SubmitContact(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ContactRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.contact.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if prm.emailService.Enabled() {
		if err := prm.emailService.SendContactMessage(body); err != nil {
			prm.logger.Error("Failed to relay contact message", "error", err)
			gecho.InternalServerError(w,
				gecho.WithMessage("error.contact.sendFailed"),
				gecho.Send(),
			)
			return
		}
	} else {
		prm.logger.Info("Contact message received",
			gecho.Field("from", body.Email),
			gecho.Field("subject", body.Subject),
		)
	}

	gecho.Success(w,
		gecho.WithMessage("success.contact.received"),
		gecho.Send(),
	)
}
