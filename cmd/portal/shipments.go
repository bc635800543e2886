package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courierPortal/internal/lifecycle"
	"courierPortal/internal/schema"
	"courierPortal/models"
)

var bookOpts struct {
	senderName    string
	senderPhone   string
	senderAddress string
	senderCity    string
	senderPincode string

	receiverName    string
	receiverPhone   string
	receiverAddress string
	receiverCity    string
	receiverPincode string

	weight  float64
	tier    string
	payment string
}

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a new shipment",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := currentUser()
		if err != nil {
			return fail(err)
		}
		sh, err := app.shipping.CreateShipment(cmd.Context(), lifecycle.BookingSpec{
			OwnerID: u.ID,
			Sender: models.Contact{
				Name: bookOpts.senderName, Phone: bookOpts.senderPhone,
				Address: bookOpts.senderAddress, City: bookOpts.senderCity, Pincode: bookOpts.senderPincode,
			},
			Receiver: models.Contact{
				Name: bookOpts.receiverName, Phone: bookOpts.receiverPhone,
				Address: bookOpts.receiverAddress, City: bookOpts.receiverCity, Pincode: bookOpts.receiverPincode,
			},
			WeightKg:    bookOpts.weight,
			Tier:        parseTier(bookOpts.tier),
			PaymentMode: models.PaymentMode(strings.ToLower(bookOpts.payment)),
		})
		if err != nil {
			return fail(err)
		}
		color.Green("Booked %s", sh.TrackingNumber)
		fmt.Printf("  %s, %.1f kg, cost %s\n", schema.TierTitle(string(sh.Tier)), sh.WeightKg, money(sh.Cost))
		fmt.Printf("  estimated delivery %s\n", sh.EstimatedAt.Format("2006-01-02"))
		return nil
	},
}

var trackCmd = &cobra.Command{
	Use:   "track <tracking-number>",
	Short: "Show a shipment's current state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, err := app.shipping.GetShipment(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		printShipment(sh)
		return nil
	},
}

var shipmentsCmd = &cobra.Command{
	Use:   "shipments",
	Short: "List your shipments",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := currentUser()
		if err != nil {
			return fail(err)
		}
		list, err := app.shipping.ListShipments(cmd.Context(), u.ID)
		if err != nil {
			return fail(err)
		}
		if len(list) == 0 {
			fmt.Println("no shipments")
			return nil
		}
		for i := range list {
			sh := &list[i]
			fmt.Printf("%-10s %-18s %s -> %s %s\n",
				sh.TrackingNumber, statusColor(sh.Status), sh.Sender.City, sh.Receiver.City, money(sh.Cost))
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <tracking-number> <new-status>",
	Short: "Move a shipment to a new status",
	Long: `Move a shipment along the delivery pipeline. Legal moves:
Booked -> In Transit -> Out for Delivery -> Delivered, with a retry loop
between Out for Delivery and Failed Attempt.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := currentUser(); err != nil {
			return fail(err)
		}
		sh, err := app.shipping.UpdateStatus(cmd.Context(), args[0], parseStatus(args[1]))
		if err != nil {
			return fail(err)
		}
		color.Green("%s is now %s", sh.TrackingNumber, sh.Status)
		return nil
	},
}

var cancelReason string

var cancelCmd = &cobra.Command{
	Use:   "cancel <tracking-number>",
	Short: "Cancel a shipment that is still Booked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := currentUser(); err != nil {
			return fail(err)
		}
		sh, err := app.shipping.CancelShipment(cmd.Context(), args[0], cancelReason)
		if err != nil {
			return fail(err)
		}
		color.Green("%s cancelled", sh.TrackingNumber)
		return nil
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show notifications for your role",
	Long: `Show notifications scoped to your role, most recent first.

Notifications live in the process-local cache, so this shows activity
from the current process only; one-shot invocations will not see
messages produced by earlier commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := currentUser()
		if err != nil {
			return fail(err)
		}
		list := app.state.NotificationsForRole(u.Role)
		if len(list) == 0 {
			fmt.Println("no notifications")
			return nil
		}
		for _, n := range list {
			fmt.Printf("[%s] %s\n", n.CreatedAt.Format("15:04"), n.Message)
		}
		return nil
	},
}

func init() {
	f := bookCmd.Flags()
	f.StringVar(&bookOpts.senderName, "from-name", "", "sender name")
	f.StringVar(&bookOpts.senderPhone, "from-phone", "", "sender phone")
	f.StringVar(&bookOpts.senderAddress, "from-address", "", "sender address")
	f.StringVar(&bookOpts.senderCity, "from-city", "", "sender city")
	f.StringVar(&bookOpts.senderPincode, "from-pincode", "", "sender pincode")
	f.StringVar(&bookOpts.receiverName, "to-name", "", "receiver name")
	f.StringVar(&bookOpts.receiverPhone, "to-phone", "", "receiver phone")
	f.StringVar(&bookOpts.receiverAddress, "to-address", "", "receiver address")
	f.StringVar(&bookOpts.receiverCity, "to-city", "", "receiver city")
	f.StringVar(&bookOpts.receiverPincode, "to-pincode", "", "receiver pincode")
	f.Float64Var(&bookOpts.weight, "weight", 0, "weight in kg")
	f.StringVar(&bookOpts.tier, "tier", "standard", "service tier: standard, express, same-day")
	f.StringVar(&bookOpts.payment, "payment", "upi", "payment mode: cash, upi, card")

	cancelCmd.Flags().StringVar(&cancelReason, "reason", "", "cancellation reason")
}

// parseTier accepts the flag spellings and the display/token forms.
func parseTier(s string) models.ServiceTier {
	norm := strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(s), "-", "_"), " ", "_")
	switch norm {
	case "express":
		return models.TierExpress
	case "same_day", "sameday":
		return models.TierSameDay
	case "standard":
		return models.TierStandard
	}
	return models.ServiceTier(strings.ToUpper(norm))
}

// parseStatus accepts "in-transit", "IN_TRANSIT" or "In Transit".
func parseStatus(s string) models.ShipmentStatus {
	token := strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(s, "-", "_"), " ", "_"))
	return models.ShipmentStatus(schema.StatusTitle(token))
}

func printShipment(sh *models.Shipment) {
	fmt.Printf("%s  %s\n", sh.TrackingNumber, statusColor(sh.Status))
	fmt.Printf("  from: %s, %s %s\n", sh.Sender.Name, sh.Sender.City, sh.Sender.Pincode)
	fmt.Printf("  to:   %s, %s %s\n", sh.Receiver.Name, sh.Receiver.City, sh.Receiver.Pincode)
	fmt.Printf("  %s, %.1f kg, %s via %s\n",
		schema.TierTitle(string(sh.Tier)), sh.WeightKg, money(sh.Cost), sh.PaymentMode)
	fmt.Printf("  booked %s, estimated %s\n",
		sh.BookedAt.Format("2006-01-02"), sh.EstimatedAt.Format("2006-01-02"))
	if sh.DeliveredAt != nil {
		fmt.Printf("  delivered %s\n", sh.DeliveredAt.Format("2006-01-02"))
	}
	if sh.CancelReason != "" {
		fmt.Printf("  cancelled: %s\n", sh.CancelReason)
	}
}

func statusColor(s models.ShipmentStatus) string {
	switch s {
	case models.StatusDelivered:
		return color.GreenString(string(s))
	case models.StatusCancelled, models.StatusFailedAttempt:
		return color.RedString(string(s))
	case models.StatusBooked:
		return color.CyanString(string(s))
	default:
		return color.YellowString(string(s))
	}
}

func money(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', 2, 64)
}
