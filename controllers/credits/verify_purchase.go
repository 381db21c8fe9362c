package credits

import (
	"encoding/json"
	"errors"

	"funhub/database"
	"funhub/helpers"
	"funhub/models"
	"funhub/providers"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreditPackage struct {
	Credits int
	Price   decimal.Decimal
}

// creditPackages mirrors the storefront. Credits of -1 marks the timed
// unlimited pass, which the frontend resolves on its side.
var creditPackages = map[string]CreditPackage{
	"starter":     {Credits: 5, Price: decimal.NewFromFloat(0.49)},
	"popular":     {Credits: 15, Price: decimal.NewFromFloat(1.29)},
	"best-value":  {Credits: 50, Price: decimal.NewFromFloat(2.99)},
	"premium-24h": {Credits: -1, Price: decimal.NewFromFloat(4.99)},
}

// amountTolerance absorbs rounding between the storefront and PayPal.
var amountTolerance = decimal.NewFromFloat(0.01)

type VerifyPurchaseRequest struct {
	OrderID string `json:"order_id"`
	Package string `json:"package"`
}

// VerifyPurchaseHandler grants credits for a completed PayPal order. Each
// order id grants exactly once; the used_orders unique index closes the
// double-submit race.
func VerifyPurchaseHandler(paypal *providers.PayPalClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req VerifyPurchaseRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if len(req.OrderID) < 3 || len(req.OrderID) > 128 {
			return helpers.JSONError(c, "INVALID_ORDER_ID")
		}

		player, ok := c.Locals("player").(models.Player)
		if !ok {
			return helpers.JSONError(c, "INVALID_DEVICE_SESSION")
		}

		if !paypal.Configured() {
			return helpers.JSONErrorStatus(c, fiber.StatusNotImplemented, "PAYPAL_NOT_CONFIGURED")
		}

		var existing models.UsedOrder
		if err := database.DB.Where("order_id = ?", req.OrderID).First(&existing).Error; err == nil {
			return helpers.ServiceError(c, services.ErrOrderAlreadyUsed)
		}

		order, err := paypal.VerifyOrder(req.OrderID)
		if err != nil || order == nil {
			return helpers.ServiceError(c, services.ErrInvalidOrder)
		}

		pkg, known := creditPackages[req.Package]
		if !known {
			return helpers.ServiceError(c, services.ErrUnknownPackage)
		}
		if order.Amount.Sub(pkg.Price).Abs().GreaterThan(amountTolerance) {
			return helpers.ServiceError(c, services.ErrAmountMismatch)
		}

		used := models.UsedOrder{
			OrderID:  req.OrderID,
			DeviceID: player.DeviceID,
			Package:  req.Package,
			Amount:   order.Amount,
			Currency: order.Currency,
		}
		if err := database.DB.Create(&used).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return helpers.ServiceError(c, services.ErrOrderAlreadyUsed)
			}
			return helpers.JSONError(c, "FAILED_TO_RECORD_ORDER")
		}

		metadata, _ := json.Marshal(fiber.Map{"order_id": req.OrderID, "package": req.Package})

		if accountID := resolveAccountID(c, player); accountID != nil {
			var account models.Account
			if err := database.DB.First(&account, *accountID).Error; err == nil {
				newBalance := account.Credits + pkg.Credits
				database.DB.Model(&account).Update("credits", newBalance)
				database.DB.Create(&models.CreditTransaction{
					AccountID: accountID,
					TrxType:   "purchase",
					Amount:    pkg.Credits,
					Metadata:  datatypes.JSON(metadata),
				})
				return c.JSON(fiber.Map{
					"success":       true,
					"credits_added": pkg.Credits,
					"new_balance":   newBalance,
					"source":        "account",
				})
			}
		}

		newBalance := player.LocalCredits + pkg.Credits
		database.DB.Model(&player).Update("local_credits", newBalance)
		database.DB.Create(&models.CreditTransaction{
			PlayerID: &player.ID,
			TrxType:  "purchase",
			Amount:   pkg.Credits,
			Metadata: datatypes.JSON(metadata),
		})

		return c.JSON(fiber.Map{
			"success":       true,
			"credits_added": pkg.Credits,
			"new_balance":   newBalance,
			"source":        "local",
		})
	}
}
