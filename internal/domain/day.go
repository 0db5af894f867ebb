package domain

// DayResult es el resultado de un día simulado. Se produce una vez y no se modifica.
type DayResult struct {
	Day int

	// Capital
	CapitalPlusClaim float64 // capital de inicio + claims acumulados
	StartCapital     float64
	CumulativeClaim  float64
	Seed             float64 // monto arriesgado por trade
	WinCount         int
	LossCount        int
	TotalProfit      float64
	TotalLoss        float64 // negativo
	DailyPnL         float64
	DailyFee         float64
	SelfReferral     float64
	NetPnL           float64
	EndCapital       float64

	// Nodos de seguro. Los conteos son enteros guardados en float64: con la
	// política por defecto superan int64 antes del día 80.
	InsurancePool       float64 // pérdida convertible de hoy (positivo)
	NewNodesToday       float64
	CarryoverLoss       float64 // remanente que no llegó a formar un nodo
	WaitingNodes        float64
	ActiveNodes         float64
	ExpiredNodes        float64
	NewlyActivatedNodes float64

	// Airdrop
	TodayAirdropTotal float64
	CumulativeAirdrop float64
	TotalCapital      float64 // EndCapital + CumulativeAirdrop

	// Claims
	ClaimStageIndex    int
	TodayClaimAmount   float64
	BalanceBeforeClaim float64
	BalanceAfterClaim  float64
}
