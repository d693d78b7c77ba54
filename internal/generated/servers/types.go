package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error codes carried in Error.Code.
const (
	ErrorCodeValidation        = "validation_error"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeConflict          = "conflict"
	ErrorCodeInvalidTransition = "invalid_transition"
	ErrorCodeInvalidState      = "invalid_state"
	ErrorCodeInternal          = "internal_error"
)

// Error defines model for Error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Address            *string            `json:"address,omitempty"`
	BudgetFrom         *string            `json:"budgetFrom,omitempty"`
	BudgetTo           *string            `json:"budgetTo,omitempty"`
	CategoryId         openapi_types.UUID `json:"categoryId"`
	Deadline           *time.Time         `json:"deadline,omitempty"`
	Description        *string            `json:"description,omitempty"`
	Latitude           *float64           `json:"latitude,omitempty"`
	Longitude          *float64           `json:"longitude,omitempty"`
	PreferredStartDate *time.Time         `json:"preferredStartDate,omitempty"`
	PriceType          *string            `json:"priceType,omitempty"`
	Publish            *bool              `json:"publish,omitempty"`
	Title              string             `json:"title"`
	Urgency            *string            `json:"urgency,omitempty"`
}

// Order defines model for Order.
type Order struct {
	ActualEndDate      *time.Time          `json:"actualEndDate,omitempty"`
	ActualStartDate    *time.Time          `json:"actualStartDate,omitempty"`
	Address            *string             `json:"address,omitempty"`
	AgreedPrice        *string             `json:"agreedPrice,omitempty"`
	ApplicationsCount  int                 `json:"applicationsCount"`
	BudgetFrom         *string             `json:"budgetFrom,omitempty"`
	BudgetTo           *string             `json:"budgetTo,omitempty"`
	CategoryId         openapi_types.UUID  `json:"categoryId"`
	CreatedAt          time.Time           `json:"createdAt"`
	CustomerId         openapi_types.UUID  `json:"customerId"`
	CustomerRating     *int                `json:"customerRating,omitempty"`
	CustomerReview     *string             `json:"customerReview,omitempty"`
	Deadline           *time.Time          `json:"deadline,omitempty"`
	Description        *string             `json:"description,omitempty"`
	DistanceKm         *float64            `json:"distanceKm,omitempty"`
	ExecutorId         *openapi_types.UUID `json:"executorId,omitempty"`
	Id                 openapi_types.UUID  `json:"id"`
	IsPublished        bool                `json:"isPublished"`
	Latitude           *float64            `json:"latitude,omitempty"`
	Longitude          *float64            `json:"longitude,omitempty"`
	PreferredStartDate *time.Time          `json:"preferredStartDate,omitempty"`
	PriceType          string              `json:"priceType"`
	Score              *int                `json:"score,omitempty"`
	Status             string              `json:"status"`
	Title              string              `json:"title"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	Urgency            string              `json:"urgency"`
	ViewsCount         int                 `json:"viewsCount"`
}

// OrderPage defines model for OrderPage.
type OrderPage struct {
	Items    []Order `json:"items"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
	Total    int64   `json:"total"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status string `json:"status"`
}

// Completion defines model for Completion.
type Completion struct {
	Rating int     `json:"rating"`
	Review *string `json:"review,omitempty"`
}

// NewApplication defines model for NewApplication.
type NewApplication struct {
	AvailableFrom        *time.Time `json:"availableFrom,omitempty"`
	Message              *string    `json:"message,omitempty"`
	ProposedDurationDays *int       `json:"proposedDurationDays,omitempty"`
	ProposedPrice        string     `json:"proposedPrice"`
}

// Rejection defines model for Rejection.
type Rejection struct {
	Reason *string `json:"reason,omitempty"`
}

// Application defines model for Application.
type Application struct {
	AvailableFrom        *time.Time         `json:"availableFrom,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
	ExecutorId           openapi_types.UUID `json:"executorId"`
	Id                   openapi_types.UUID `json:"id"`
	Message              *string            `json:"message,omitempty"`
	OrderId              openapi_types.UUID `json:"orderId"`
	ProposedDurationDays *int               `json:"proposedDurationDays,omitempty"`
	ProposedPrice        string             `json:"proposedPrice"`
	RejectionReason      *string            `json:"rejectionReason,omitempty"`
	Status               string             `json:"status"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// Executor defines model for Executor.
type Executor struct {
	CompletedOrders int                `json:"completedOrders"`
	DistanceKm      *float64           `json:"distanceKm,omitempty"`
	Id              openapi_types.UUID `json:"id"`
	IsAvailable     bool               `json:"isAvailable"`
	IsPremium       bool               `json:"isPremium"`
	Latitude        *float64           `json:"latitude,omitempty"`
	Longitude       *float64           `json:"longitude,omitempty"`
	Rating          float64            `json:"rating"`
	UserId          openapi_types.UUID `json:"userId"`
	WorkRadiusKm    float64            `json:"workRadiusKm"`
}

// XUserID is the identity of the calling user.
type XUserID = openapi_types.UUID

// ActorParams defines parameters for operations that require a caller identity.
type ActorParams struct {
	XUserID XUserID `json:"X-User-ID"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status     *[]string           `form:"status,omitempty" json:"status,omitempty"`
	CategoryId *openapi_types.UUID `form:"categoryId,omitempty" json:"categoryId,omitempty"`
	CustomerId *openapi_types.UUID `form:"customerId,omitempty" json:"customerId,omitempty"`
	ExecutorId *openapi_types.UUID `form:"executorId,omitempty" json:"executorId,omitempty"`
	Urgency    *string             `form:"urgency,omitempty" json:"urgency,omitempty"`
	Visible    *bool               `form:"visible,omitempty" json:"visible,omitempty"`
	Page       *int                `form:"page,omitempty" json:"page,omitempty"`
	PageSize   *int                `form:"pageSize,omitempty" json:"pageSize,omitempty"`
	XUserID    *XUserID            `json:"X-User-ID,omitempty"`
}

// GetOrderParams defines parameters for GetOrder.
type GetOrderParams struct {
	XUserID *XUserID `json:"X-User-ID,omitempty"`
}

// GetRecommendedOrdersParams defines parameters for GetRecommendedOrders.
type GetRecommendedOrdersParams struct {
	Limit   *int    `form:"limit,omitempty" json:"limit,omitempty"`
	XUserID XUserID `json:"X-User-ID"`
}

// GetRecommendedExecutorsParams defines parameters for GetRecommendedExecutors.
type GetRecommendedExecutorsParams struct {
	Limit   *int    `form:"limit,omitempty" json:"limit,omitempty"`
	XUserID XUserID `json:"X-User-ID"`
}

// FindNearbyOrdersParams defines parameters for FindNearbyOrders.
type FindNearbyOrdersParams struct {
	Lat      float64 `form:"lat" json:"lat"`
	Lng      float64 `form:"lng" json:"lng"`
	RadiusKm float64 `form:"radiusKm" json:"radiusKm"`
	Limit    *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// FindNearbyExecutorsParams defines parameters for FindNearbyExecutors.
type FindNearbyExecutorsParams struct {
	Lat      float64 `form:"lat" json:"lat"`
	Lng      float64 `form:"lng" json:"lng"`
	RadiusKm float64 `form:"radiusKm" json:"radiusKm"`
}
