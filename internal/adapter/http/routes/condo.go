package routes

import (
	"condo_gestao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCondos = "/condos/:condo_id"
)

func addCondoRoutes(
	rg *gin.RouterGroup,
	billingHandler *handlers.BillingHandler,
	paymentHandler *handlers.PaymentHandler,
	configHandler *handlers.BillingConfigHandler,
	complaintHandler *handlers.ComplaintHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	residentHandler *handlers.ResidentHandler,
) {
	condo := rg.Group(PathCondos)

	billing := condo.Group("/billing")
	{
		billing.POST("/generate", billingHandler.GenerateCharges)
		billing.POST("/sweep-overdue", billingHandler.SweepOverdue)
		billing.GET("/config", configHandler.GetConfig)
		billing.PUT("/config", configHandler.SaveConfig)
	}

	payments := condo.Group("/payments")
	{
		payments.PATCH("/:payment_id/confirm", paymentHandler.ConfirmPayment)
		payments.PATCH("/:payment_id/receipt", paymentHandler.AttachReceipt)
		payments.POST("/:payment_id/pix-charge", paymentHandler.CreatePixCharge)
		payments.GET("/standings", paymentHandler.ListStandings)
		payments.GET("/chart", paymentHandler.YearlyChart)
	}

	residents := condo.Group("/residents")
	{
		residents.GET("", residentHandler.ListResidents)
		residents.GET("/:resident_id", residentHandler.GetResident)
		residents.GET("/:resident_id/payments", paymentHandler.ListResidentPayments)
		residents.POST("/:resident_id/payments", paymentHandler.RegisterPayment)
	}

	complaints := condo.Group("/complaints")
	{
		complaints.POST("", complaintHandler.CreateComplaint)
		complaints.GET("", complaintHandler.ListComplaints)
		complaints.GET("/counts", complaintHandler.ComplaintCounts)
		complaints.GET("/:complaint_id", complaintHandler.GetComplaint)
		complaints.PATCH("/:complaint_id/respond", complaintHandler.RespondComplaint)
		complaints.PATCH("/:complaint_id/status", complaintHandler.UpdateComplaintStatus)
	}

	maintenances := condo.Group("/maintenances")
	{
		maintenances.POST("", maintenanceHandler.CreateMaintenance)
		maintenances.GET("", maintenanceHandler.ListMaintenances)
		maintenances.GET("/stats", maintenanceHandler.MaintenanceStats)
		maintenances.PATCH("/:maintenance_id/status", maintenanceHandler.UpdateMaintenanceStatus)
	}
}
