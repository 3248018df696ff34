package order

import (
	"backoffice/internal/entities"
)

func ToDomain(o *OrderDB) *entities.SellingOrder {
	if o == nil {
		return nil
	}

	return &entities.SellingOrder{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		TotalAmount:   o.TotalAmount,
		UsedPoints:    o.UsedPoints,
		EarnedPoints:  o.EarnedPoints,
		FinalAmount:   o.FinalAmount,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: entities.PaymentStatusType(o.PaymentStatus),
		Status:        entities.OrderStatusType(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func ToDomainItem(i *OrderItemDB) entities.OrderItem {
	return entities.OrderItem{
		ID:          i.ID,
		OrderID:     i.OrderID,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Unit:        i.Unit,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		LineTotal:   i.LineTotal,
	}
}

func ToDomainHistory(h *StatusHistoryDB) entities.OrderStatusHistory {
	return entities.OrderStatusHistory{
		ID:        h.ID,
		OrderID:   h.OrderID,
		Status:    entities.OrderStatusType(h.Status),
		CreatedAt: h.CreatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.SellingOrder {
	if len(ordersDB) == 0 {
		return []entities.SellingOrder{}
	}

	result := make([]entities.SellingOrder, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
