// Package export convierte el historial de una corrida en filas planas,
// redondeadas a 2 decimales, para consola y CSV.
package export

import (
	"strconv"

	"github.com/alejandrodnm/airdropsim/internal/domain"
	"github.com/shopspring/decimal"
)

// Columns es el esquema de una fila exportada, en orden.
var Columns = []string{
	"day",
	"capital_plus_claim",
	"start_capital",
	"cumulative_claim",
	"seed",
	"win_count",
	"loss_count",
	"total_profit",
	"total_loss",
	"daily_pnl",
	"daily_fee",
	"self_referral",
	"net_pnl",
	"end_capital",
	"insurance_pool",
	"new_nodes_today",
	"carryover_loss",
	"waiting_nodes",
	"active_nodes",
	"expired_nodes",
	"newly_activated_nodes",
	"today_airdrop_total",
	"cumulative_airdrop",
	"total_capital",
	"claim_stage_index",
	"today_claim_amount",
	"balance_before_claim",
	"balance_after_claim",
}

// Round2 redondea a 2 decimales (mitad lejos de cero) sobre la representación decimal exacta del float.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Amount formatea un monto con exactamente 2 decimales.
func Amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Count formatea un conteo de nodos, entero aunque supere el rango de int64.
func Count(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// Row devuelve los valores de un día en el orden de Columns.
func Row(d domain.DayResult) []string {
	itoa := strconv.Itoa
	return []string{
		itoa(d.Day),
		Amount(d.CapitalPlusClaim),
		Amount(d.StartCapital),
		Amount(d.CumulativeClaim),
		Amount(d.Seed),
		itoa(d.WinCount),
		itoa(d.LossCount),
		Amount(d.TotalProfit),
		Amount(d.TotalLoss),
		Amount(d.DailyPnL),
		Amount(d.DailyFee),
		Amount(d.SelfReferral),
		Amount(d.NetPnL),
		Amount(d.EndCapital),
		Amount(d.InsurancePool),
		Count(d.NewNodesToday),
		Amount(d.CarryoverLoss),
		Count(d.WaitingNodes),
		Count(d.ActiveNodes),
		Count(d.ExpiredNodes),
		Count(d.NewlyActivatedNodes),
		Amount(d.TodayAirdropTotal),
		Amount(d.CumulativeAirdrop),
		Amount(d.TotalCapital),
		itoa(d.ClaimStageIndex),
		Amount(d.TodayClaimAmount),
		Amount(d.BalanceBeforeClaim),
		Amount(d.BalanceAfterClaim),
	}
}
