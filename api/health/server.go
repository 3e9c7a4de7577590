package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	healthStatus := hrm.healthService.GetServerHealthStatus()
	gecho.Success(w,
		gecho.WithData(healthStatus),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetStoreHealth(w http.ResponseWriter, r *http.Request) {
	storeHealthStatus, err := hrm.healthService.GetStoreHealthStatus(r.Context())
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Cart store health check failed"),
			gecho.WithData(storeHealthStatus),
			gecho.Send(),
		)
		return
	}
	gecho.Success(w,
		gecho.WithData(storeHealthStatus),
		gecho.Send(),
	)
}
