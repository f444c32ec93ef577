// Package orderrepo maps order aggregates to the orders and order_lines tables.
//
// Lines and the price breakdown are written once on insert. Updates touch only the
// mutable columns, so a stored order's totals can never drift from what the customer
// was quoted.
package orderrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorName       string          `gorm:"type:varchar(255);not null"`
	AgentID          *uuid.UUID      `gorm:"type:uuid;index"`
	AgentName        *string         `gorm:"type:varchar(255)"`
	Subtotal         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxHalfA         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxHalfB         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Address          string          `gorm:"type:text;not null"`
	Lat              *float64
	Lng              *float64
	ContactPhone     string    `gorm:"type:varchar(32);not null"`
	PaymentMethod    string    `gorm:"type:varchar(16);not null"`
	PaymentStatus    string    `gorm:"type:varchar(16);not null"`
	PaymentReference string    `gorm:"type:varchar(255);not null;default:''"`
	Status           string    `gorm:"type:varchar(32);not null;index"`
	ConfirmationCode *string   `gorm:"type:char(4)"`
	Rated            bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"not null;autoCreateTime:false;index"`
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime:false"`
	Version          int64     `gorm:"not null"`

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one frozen line of an order. Position keeps the customer's ordering.
type OrderLineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// mutableColumns are the only columns Update writes.
func (dto OrderDTO) mutableColumns() map[string]any {
	return map[string]any{
		"agent_id":          dto.AgentID,
		"agent_name":        dto.AgentName,
		"payment_status":    dto.PaymentStatus,
		"payment_reference": dto.PaymentReference,
		"status":            dto.Status,
		"confirmation_code": dto.ConfirmationCode,
		"rated":             dto.Rated,
		"updated_at":        dto.UpdatedAt,
		"version":           dto.Version,
	}
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   orderID,
			Position:  i,
			ItemID:    l.ItemID().Bytes(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice().Decimal(),
			Quantity:  l.Quantity(),
		})
	}

	dto := OrderDTO{
		ID:               orderID,
		CustomerID:       o.CustomerID().Bytes(),
		VendorID:         o.Vendor().ID.Bytes(),
		VendorName:       o.Vendor().Name,
		Subtotal:         o.Price().Subtotal().Decimal(),
		DeliveryFee:      o.Price().DeliveryFee().Decimal(),
		TaxHalfA:         o.Price().TaxHalfA().Decimal(),
		TaxHalfB:         o.Price().TaxHalfB().Decimal(),
		Total:            o.Price().Total().Decimal(),
		Address:          o.Target().Address(),
		ContactPhone:     o.Target().Phone(),
		PaymentMethod:    o.Payment().Method().String(),
		PaymentStatus:    o.Payment().Status().String(),
		PaymentReference: o.Payment().Reference(),
		Status:           o.Status().String(),
		Rated:            o.IsRated(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		Version:          o.Version(),
		Lines:            lines,
	}

	if p := o.Target().Point(); p != nil {
		lat, lng := p.Lat(), p.Lng()
		dto.Lat, dto.Lng = &lat, &lng
	}
	if a := o.Agent(); a != nil {
		id, name := a.ID.Bytes(), a.Name
		dto.AgentID, dto.AgentName = &id, &name
	}
	if code := o.ConfirmationCode(); code != "" {
		s := code.String()
		dto.ConfirmationCode = &s
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	s, err := toSnapshot(dto)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(s)
}

func toSnapshot(dto OrderDTO) (order.Snapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Snapshot{}, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return order.Snapshot{}, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return order.Snapshot{}, err
	}

	lines := make([]order.LineItem, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return order.Snapshot{}, lineErr
		}
		lines = append(lines, line)
	}

	price, err := priceToDomain(dto)
	if err != nil {
		return order.Snapshot{}, err
	}

	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if pointErr != nil {
			return order.Snapshot{}, pointErr
		}
		point = &p
	}
	target, err := order.NewDeliveryTarget(dto.Address, point, dto.ContactPhone)
	if err != nil {
		return order.Snapshot{}, err
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return order.Snapshot{}, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return order.Snapshot{}, err
	}
	payment, err := order.RestorePayment(method, paymentStatus, dto.PaymentReference)
	if err != nil {
		return order.Snapshot{}, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.Snapshot{}, err
	}

	var agentRef *order.AgentRef
	if dto.AgentID != nil {
		agentID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return order.Snapshot{}, agentErr
		}
		ref := order.AgentRef{ID: agentID}
		if dto.AgentName != nil {
			ref.Name = *dto.AgentName
		}
		agentRef = &ref
	}

	var code order.ConfirmationCode
	if dto.ConfirmationCode != nil {
		code = order.ConfirmationCode(*dto.ConfirmationCode)
	}

	return order.Snapshot{
		ID:               id,
		CustomerID:       customerID,
		Vendor:           order.VendorRef{ID: vendorID, Name: dto.VendorName},
		Agent:            agentRef,
		Lines:            lines,
		Price:            price,
		Target:           target,
		Payment:          payment,
		Status:           status,
		ConfirmationCode: code,
		CreatedAt:        dto.CreatedAt.UTC(),
		UpdatedAt:        dto.UpdatedAt.UTC(),
		Version:          dto.Version,
		Rated:            dto.Rated,
	}, nil
}

func lineToDomain(dto OrderLineDTO) (order.LineItem, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(itemID, dto.Name, unitPrice, dto.Quantity)
}

func priceToDomain(dto OrderDTO) (order.Price, error) {
	amounts := make([]kernel.Money, 0, 4)
	for _, d := range []decimal.Decimal{dto.Subtotal, dto.DeliveryFee, dto.TaxHalfA, dto.TaxHalfB} {
		m, err := kernel.NewMoney(d)
		if err != nil {
			return order.Price{}, err
		}
		amounts = append(amounts, m)
	}
	return order.NewPrice(amounts[0], amounts[1], amounts[2], amounts[3])
}
