package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/http/handlers"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/http/middleware"
)

// BuildRouter wires the API surface. Paths and response shapes mirror the
// service this replaces; session-gated routes carry the bare token in the
// Authorization header.
func BuildRouter(ah *handlers.AccountHandlers, mh *handlers.MedicationHandlers, sess *middleware.SessionMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api/v1")

	users := api.Group("/users")
	users.POST("/signup", ah.Signup)
	users.POST("/login", ah.Login)
	users.POST("/reset-password", ah.ResetPassword)

	gated := users.Group("/:user_id").Use(sess.RequireSession())
	gated.POST("/validate-session", ah.ValidateSession)
	gated.POST("/logout", ah.Logout)
	gated.POST("/update-password", ah.UpdatePassword)
	gated.GET("", ah.GetUser)
	gated.PUT("", ah.UpdateUser)
	gated.DELETE("", ah.DeleteUser)
	gated.GET("/medications", ah.ListSavedMedications)
	gated.POST("/medications/check-saved", ah.CheckSavedMedication)
	gated.PUT("/medications/:med_id", ah.SaveMedication)
	gated.DELETE("/medications/:med_id", ah.RemoveSavedMedication)

	meds := api.Group("/medications")
	meds.PUT("", mh.PutMedication)
	meds.POST("/search", mh.SearchMedications)
	meds.POST("/classify-by-image", mh.ClassifyByImage)
	meds.POST("/classify-by-description", mh.ClassifyByDescription)
	meds.GET("/img/:med_name", mh.GetMedicationImage)
	meds.GET("/:med_id", mh.GetMedication)
	meds.DELETE("/:med_id", mh.DeleteMedication)

	return r
}
