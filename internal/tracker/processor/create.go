package processor

import (
	"ambassador-server/internal/clients/ticketing"
	"ambassador-server/internal/observability"
	"ambassador-server/internal/store"
	ticketingProcessor "ambassador-server/internal/ticketing/processor"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// CreateTrackerIfAbsent creates the provider tracker for an accepted ambassador.
// It never returns an error: every path is reported as an Outcome so callers can
// treat tracking as optional.
func (p *TrackerProcessor) CreateTrackerIfAbsent(ctx context.Context, ambassadorEventID uuid.UUID) TrackerResult {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ambassador_event_id", Value: ambassadorEventID.String()})

	result := p.createTracker(ctx, ambassadorEventID)
	trackerCreationCounter.WithLabelValues(string(result.Outcome)).Inc()
	return result
}

func (p *TrackerProcessor) createTracker(ctx context.Context, ambassadorEventID uuid.UUID) TrackerResult {
	tc, err := p.store.GetTrackerContext(ctx, ambassadorEventID)
	if err != nil {
		p.logger.Error(ctx, "failed to load tracker context", err)
		return TrackerResult{Outcome: OutcomeFailed, Err: err}
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "organization_id", Value: tc.OrganizationID.String()},
		observability.Field{Key: "event_id", Value: tc.EventID.String()},
	)

	if tc.TrackerGUID != nil {
		return TrackerResult{Outcome: OutcomeAlreadyExists}
	}
	if tc.TicketingShopID == nil || *tc.TicketingShopID == "" {
		return TrackerResult{Outcome: OutcomeNotConfigured}
	}

	token, err := p.tokens.GetValidToken(ctx, tc.OrganizationID)
	if err != nil {
		if errors.Is(err, ticketingProcessor.ErrNotConnected) {
			if errors.Is(err, ticketingProcessor.ErrTokenExpiredUnrecoverable) {
				p.logger.Warn(ctx, "ticketing integration needs to be reconnected, skipping tracker creation")
			}
			return TrackerResult{Outcome: OutcomeNotConnected}
		}
		p.logger.Error(ctx, "failed to obtain ticketing token", err)
		return TrackerResult{Outcome: OutcomeFailed, Err: err}
	}

	now := p.now()
	claimed, err := p.store.ClaimTrackerCreation(ctx, ambassadorEventID, now, now.Add(-p.claimTimeout))
	if err != nil {
		p.logger.Error(ctx, "failed to claim tracker creation", err)
		return TrackerResult{Outcome: OutcomeFailed, Err: err}
	}
	if !claimed {
		p.logger.Info(ctx, "tracker creation already in progress or done")
		return TrackerResult{Outcome: OutcomeInProgress}
	}

	tracker, err := p.api.CreateTracker(ctx, ticketing.APICredentials{
		AccessToken: token.AccessToken,
		CompanyID:   token.ProviderCompanyID,
	}, ticketing.CreateTrackerParams{
		ShopID: *tc.TicketingShopID,
		Name:   trackerName(tc),
		Type:   ticketing.TrackerTypeAmbassador,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create ticketing tracker", err)
		p.releaseClaim(ctx, ambassadorEventID)
		return TrackerResult{Outcome: OutcomeFailed, Err: err}
	}

	link, err := p.store.SetTrackerDetails(ctx, store.SetTrackerDetailsParams{
		AmbassadorEventID: ambassadorEventID,
		TrackerGUID:       tracker.GUID,
		TrackerCode:       tracker.Code,
		TrackerURL:        p.trackerURL(tracker.Code),
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, fmt.Sprintf("tracker %s created but another tracker was already stored", tracker.GUID))
			return TrackerResult{Outcome: OutcomeAlreadyExists}
		}
		p.logger.Error(ctx, fmt.Sprintf("failed to store tracker %s", tracker.GUID), err)
		p.releaseClaim(ctx, ambassadorEventID)
		return TrackerResult{Outcome: OutcomeFailed, Err: err}
	}

	p.logger.Info(ctx, fmt.Sprintf("created ticketing tracker %s", tracker.GUID))
	return TrackerResult{Outcome: OutcomeCreated, Link: &link}
}

func (p *TrackerProcessor) releaseClaim(ctx context.Context, ambassadorEventID uuid.UUID) {
	if err := p.store.ReleaseTrackerClaim(ctx, ambassadorEventID); err != nil {
		p.logger.Error(ctx, "failed to release tracker claim", err)
	}
}

func (p *TrackerProcessor) trackerURL(code string) string {
	return strings.ReplaceAll(p.urlTemplate, "{code}", url.PathEscape(code))
}

func trackerName(tc store.TrackerContext) string {
	name := strings.TrimSpace(strings.TrimSpace(tc.FirstName) + " " + strings.TrimSpace(tc.LastName))
	if name == "" {
		return "Ambassador " + tc.UserID.String()[:8]
	}
	return name
}
