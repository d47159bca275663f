// Package aggregate reduces order listings to per-client summaries.
package aggregate

import "techfix/internal/models"

// LatestPerClient keeps one order per distinct client: the first one seen in
// a forward scan. The input must already be sorted by date descending (the
// store query guarantees that), so the first hit for a client is its most
// recent order. Clients without orders never show up here, the input is
// order-keyed.
func LatestPerClient(ordens []models.Ordem) []models.Ordem {
	ultimas := make([]models.Ordem, 0, len(ordens))
	seen := make(map[string]struct{}, len(ordens))

	for _, ordem := range ordens {
		if _, ok := seen[ordem.FkClienteID]; ok {
			continue
		}
		seen[ordem.FkClienteID] = struct{}{}
		ultimas = append(ultimas, ordem)
	}
	return ultimas
}
