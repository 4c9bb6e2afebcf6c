package processor

import (
	"ambassador-server/internal/clients/ticketing"
	"ambassador-server/internal/observability"
	"ambassador-server/internal/store"
	ticketingProcessor "ambassador-server/internal/ticketing/processor"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// SyncStats replaces every tracked link's ticket count with the provider's current
// figure. Trackers absent from the provider response are reset to zero.
func (p *TrackerProcessor) SyncStats(ctx context.Context, organizationID uuid.UUID) (SyncResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "organization_id", Value: organizationID.String()})

	links, err := p.store.ListTrackedLinksByOrganization(ctx, organizationID)
	if err != nil {
		p.logger.Error(ctx, "failed to list tracked links", err)
		return SyncResult{}, err
	}
	if len(links) == 0 {
		return SyncResult{}, nil
	}

	token, err := p.tokens.GetValidToken(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, ticketingProcessor.ErrNotConnected) {
			p.logger.Error(ctx, "failed to obtain ticketing token for stats sync", err)
		}
		return SyncResult{}, err
	}

	stats, err := p.api.FetchTrackerStats(ctx, ticketing.APICredentials{
		AccessToken: token.AccessToken,
		CompanyID:   token.ProviderCompanyID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to fetch tracker statistics", err)
		statsSyncCounter.WithLabelValues("failed").Inc()
		return SyncResult{}, fmt.Errorf("failed to fetch tracker statistics: %w", err)
	}

	var result SyncResult
	updates := make([]store.TrackerStatsUpdate, 0, len(links))
	for _, link := range links {
		if link.TrackerGUID == nil {
			continue
		}
		sold := stats[*link.TrackerGUID]
		updates = append(updates, store.TrackerStatsUpdate{
			TrackerLinkID: link.ID,
			TicketsSold:   sold,
		})
		result.TicketsSold += sold
	}

	if err := p.store.UpdateTrackerStats(ctx, updates, p.now()); err != nil {
		p.logger.Error(ctx, "failed to store tracker statistics", err)
		statsSyncCounter.WithLabelValues("failed").Inc()
		return SyncResult{}, err
	}

	result.TrackersSynced = len(updates)
	statsSyncCounter.WithLabelValues("success").Inc()
	p.logger.Info(ctx, fmt.Sprintf("synced %d trackers, %d tickets sold", result.TrackersSynced, result.TicketsSold))
	return result, nil
}

// SyncAllOrganizations runs SyncStats for every connected organization. A failing
// organization is logged and counted without stopping the pass.
func (p *TrackerProcessor) SyncAllOrganizations(ctx context.Context) (SyncAllResult, error) {
	organizationIDs, err := p.store.ListConnectedOrganizations(ctx, store.ProviderTicketing)
	if err != nil {
		p.logger.Error(ctx, "failed to list connected organizations", err)
		return SyncAllResult{}, err
	}

	var total SyncAllResult
	for _, organizationID := range organizationIDs {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
		total.Organizations++

		result, err := p.SyncStats(ctx, organizationID)
		if err != nil {
			total.Failed++
			continue
		}
		total.TrackersSynced += result.TrackersSynced
		total.TicketsSold += result.TicketsSold
	}

	p.logger.Info(ctx, fmt.Sprintf("tracker sync finished for %d organizations, %d failed", total.Organizations, total.Failed))
	return total, nil
}
