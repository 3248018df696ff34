package order

// PointValue - стоимость одного балла в минорных единицах валюты.
const PointValue int64 = 1

// UsablePoints - сколько баллов реально можно списать: не больше баланса
// и не больше, чем покрывает сумма заказа.
func UsablePoints(balance, totalAmount int64) int64 {
	if balance <= 0 || totalAmount <= 0 {
		return 0
	}

	byTotal := totalAmount / PointValue
	if balance < byTotal {
		return balance
	}
	return byTotal
}

func PointsDiscount(points int64) int64 {
	return points * PointValue
}

// EarnedPoints - начисление за завершенный заказ, rate задается конфигом
// (баллов на единицу итоговой суммы). Дробная часть отбрасывается.
func EarnedPoints(finalAmount int64, rate float64) int64 {
	if finalAmount <= 0 || rate <= 0 {
		return 0
	}
	return int64(float64(finalAmount) * rate)
}
