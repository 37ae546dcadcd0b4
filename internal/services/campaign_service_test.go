package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/services/dto"
)

type campaignFixture struct {
	svc          CampaignService
	campaignRepo *fakeCampaignRepo
	profileRepo  *fakeProfileRepo
	notifier     *fakeNotifier
	brand        *models.User
	influencer   *models.User
	admin        *models.User
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	t.Helper()

	brand := &models.User{
		BaseModel: models.BaseModel{ID: "brand-1"}, Email: "brand@test.com", FullName: "Acme Brand",
		Role: models.UserRoleBrand, IsActive: true, IsApproved: true,
		HasActiveSubscription: true,
	}
	influencer := &models.User{
		BaseModel: models.BaseModel{ID: "inf-1"}, Email: "inf@test.com", FullName: "Jane Influencer",
		Role: models.UserRoleInfluencer, IsActive: true, IsApproved: true,
	}
	admin := &models.User{
		BaseModel: models.BaseModel{ID: "adm-1"}, Email: "admin@test.com", Role: models.UserRoleAdmin,
		IsActive: true, IsApproved: true,
	}

	campaignRepo := newFakeCampaignRepo()
	profileRepo := newFakeProfileRepo()
	notifier := &fakeNotifier{}

	svc := NewCampaignService(
		campaignRepo,
		newFakeUserRepo(brand, influencer, admin),
		profileRepo,
		notifier,
	)

	return &campaignFixture{
		svc:          svc,
		campaignRepo: campaignRepo,
		profileRepo:  profileRepo,
		notifier:     notifier,
		brand:        brand,
		influencer:   influencer,
		admin:        admin,
	}
}

func (f *campaignFixture) createCampaign(t *testing.T) *models.Campaign {
	t.Helper()
	campaign, err := f.svc.CreateCampaign(f.brand.ID, &dto.CreateCampaignRequest{
		InfluencerID:   f.influencer.ID,
		Title:          "Spring launch",
		ProposedBudget: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	return campaign
}

func TestCreateCampaign_StartsPending(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	campaign := f.createCampaign(t)

	assert.Equal(t, models.CampaignStatusPending, campaign.Status)
	assert.Equal(t, f.brand.ID, campaign.BrandID)
	assert.Equal(t, f.influencer.ID, campaign.InfluencerID)
	assert.True(t, campaign.ProposedBudget.Equal(decimal.NewFromInt(1000)))
	assert.Nil(t, campaign.FinalBudget)

	// The influencer is notified once the row exists.
	assert.Eventually(t, func() bool {
		for _, n := range f.notifier.calls() {
			if n.UserID == f.influencer.ID && n.Type == repositories.NotificationTypeCampaignCreated {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestCreateCampaign_RequiresSubscription(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	f.brand.HasActiveSubscription = false
	// Re-wire with the unsubscribed brand.
	svc := NewCampaignService(f.campaignRepo, newFakeUserRepo(f.brand, f.influencer), f.profileRepo, f.notifier)

	_, err := svc.CreateCampaign(f.brand.ID, &dto.CreateCampaignRequest{
		InfluencerID:   f.influencer.ID,
		Title:          "Spring launch",
		ProposedBudget: decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, appErrors.ErrSubscriptionRequired)
}

func TestCreateCampaign_RejectsNonPositiveBudget(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	for _, budget := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		_, err := f.svc.CreateCampaign(f.brand.ID, &dto.CreateCampaignRequest{
			InfluencerID:   f.influencer.ID,
			Title:          "Spring launch",
			ProposedBudget: budget,
		})
		assert.ErrorIs(t, err, appErrors.ErrInvalidBudget)
	}
}

func TestCreateCampaign_RejectsUnapprovedInfluencer(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	f.influencer.IsApproved = false
	svc := NewCampaignService(f.campaignRepo, newFakeUserRepo(f.brand, f.influencer), f.profileRepo, f.notifier)

	_, err := svc.CreateCampaign(f.brand.ID, &dto.CreateCampaignRequest{
		InfluencerID:   f.influencer.ID,
		Title:          "Spring launch",
		ProposedBudget: decimal.NewFromInt(1000),
	})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeValidationFailed, appErr.Code)
}

func TestAcceptCampaign_InfluencerOnly(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	campaign := f.createCampaign(t)

	// The brand cannot answer its own proposal.
	_, err := f.svc.AcceptCampaign(f.brand.ID, campaign.ID)
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)

	accepted, err := f.svc.AcceptCampaign(f.influencer.ID, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusActive, accepted.Status)
}

func TestRejectCampaign_TerminalState(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	campaign := f.createCampaign(t)

	rejected, err := f.svc.RejectCampaign(f.influencer.ID, campaign.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusRejected, rejected.Status)
	assert.True(t, rejected.Status.Terminal())

	// Nothing moves out of rejected.
	_, err = f.svc.AcceptCampaign(f.influencer.ID, campaign.ID)
	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeInvalidStateTransition, appErr.Code)
}

func TestNegotiateCampaign_SetsCounterBudget(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	campaign := f.createCampaign(t)

	negotiated, err := f.svc.NegotiateCampaign(f.influencer.ID, campaign.ID, &dto.NegotiateCampaignRequest{
		CounterBudget: decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	assert.Equal(t, models.CampaignStatusNegotiation, negotiated.Status)
	require.NotNil(t, negotiated.FinalBudget)
	assert.True(t, negotiated.FinalBudget.Equal(decimal.NewFromInt(1500)))
	assert.True(t, negotiated.AgreedBudget().Equal(decimal.NewFromInt(1500)))

	// A second counter-offer from negotiation is not allowed; the brand
	// side of the loop is accept or reject.
	_, err = f.svc.NegotiateCampaign(f.influencer.ID, campaign.ID, &dto.NegotiateCampaignRequest{
		CounterBudget: decimal.NewFromInt(1800),
	})
	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeInvalidStateTransition, appErr.Code)

	// Accepting from negotiation keeps the counter budget.
	accepted, err := f.svc.AcceptCampaign(f.influencer.ID, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusActive, accepted.Status)
	assert.True(t, accepted.AgreedBudget().Equal(decimal.NewFromInt(1500)))
}

func TestCompleteCampaign_BrandOrAdmin(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	campaign := f.createCampaign(t)

	// Not completable before acceptance.
	_, err := f.svc.CompleteCampaign(f.brand.ID, campaign.ID)
	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeInvalidStateTransition, appErr.Code)

	_, err = f.svc.AcceptCampaign(f.influencer.ID, campaign.ID)
	require.NoError(t, err)

	// The influencer cannot declare their own work complete.
	_, err = f.svc.CompleteCampaign(f.influencer.ID, campaign.ID)
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)

	completed, err := f.svc.CompleteCampaign(f.brand.ID, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusCompleted, completed.Status)

	// Completion feeds the influencer's track record.
	assert.Eventually(t, func() bool {
		f.profileRepo.mu.Lock()
		defer f.profileRepo.mu.Unlock()
		return f.profileRepo.completed[f.influencer.ID] == 1
	}, time.Second, 10*time.Millisecond)
}

func TestCompleteCampaign_AdminCanResolve(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	campaign := f.createCampaign(t)

	_, err := f.svc.AcceptCampaign(f.influencer.ID, campaign.ID)
	require.NoError(t, err)

	completed, err := f.svc.CompleteCampaign(f.admin.ID, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusCompleted, completed.Status)
}

func TestCancelCampaign_BrandBeforeAcceptance(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	campaign := f.createCampaign(t)

	// Only the brand may withdraw.
	_, err := f.svc.CancelCampaign(f.influencer.ID, campaign.ID)
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)

	cancelled, err := f.svc.CancelCampaign(f.brand.ID, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusCancelled, cancelled.Status)
}

func TestCancelCampaign_NotAfterAcceptance(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	campaign := f.createCampaign(t)

	_, err := f.svc.AcceptCampaign(f.influencer.ID, campaign.ID)
	require.NoError(t, err)

	_, err = f.svc.CancelCampaign(f.brand.ID, campaign.ID)
	var appErr *appErrors.AppError
	require.True(t, appErrors.As(err, &appErr))
	assert.Equal(t, appErrors.CodeInvalidStateTransition, appErr.Code)
}

func TestGetCampaign_PartyOrAdminOnly(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	stranger := &models.User{BaseModel: models.BaseModel{ID: "brand-2"}, Role: models.UserRoleBrand, IsActive: true, IsApproved: true}
	svc := NewCampaignService(f.campaignRepo, newFakeUserRepo(f.brand, f.influencer, f.admin, stranger), f.profileRepo, f.notifier)

	campaign := f.createCampaign(t)

	_, err := svc.GetCampaign(stranger.ID, campaign.ID)
	assert.ErrorIs(t, err, appErrors.ErrInsufficientPermissions)

	for _, actor := range []string{f.brand.ID, f.influencer.ID, f.admin.ID} {
		got, err := svc.GetCampaign(actor, campaign.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.ID, got.ID)
	}
}

func TestApplyCampaignAction_DoesNotMutateOnFailure(t *testing.T) {
	t.Parallel()

	brand := &models.User{BaseModel: models.BaseModel{ID: "brand-1"}, Role: models.UserRoleBrand}
	campaign := &models.Campaign{
		BrandID:      "brand-1",
		InfluencerID: "inf-1",
		Status:       models.CampaignStatusPending,
	}

	// Wrong actor: status untouched, no event.
	event, err := applyCampaignAction(campaign, CampaignActionAccept, brand, "", nil)
	assert.Error(t, err)
	assert.Nil(t, event)
	assert.Equal(t, models.CampaignStatusPending, campaign.Status)

	// Wrong source state: status untouched.
	_, err = applyCampaignAction(campaign, CampaignActionComplete, brand, "", nil)
	assert.Error(t, err)
	assert.Equal(t, models.CampaignStatusPending, campaign.Status)
}

func TestRejectCampaign_ReasonRelayedToBrand(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	campaign := f.createCampaign(t)

	_, err := f.svc.RejectCampaign(f.influencer.ID, campaign.ID, &dto.RejectCampaignRequest{
		Reason: "Budget too low for the requested deliverables",
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		for _, n := range f.notifier.calls() {
			if n.UserID == f.brand.ID && n.Type == repositories.NotificationTypeCampaignRejected {
				return n.Message == "Your campaign 'Spring launch' was rejected. Reason: Budget too low for the requested deliverables"
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestNegotiateCampaign_NotificationCarriesBudgetAndMessage(t *testing.T) {
	t.Parallel()

	f := newCampaignFixture(t)
	campaign := f.createCampaign(t)

	_, err := f.svc.NegotiateCampaign(f.influencer.ID, campaign.ID, &dto.NegotiateCampaignRequest{
		CounterBudget: decimal.NewFromInt(1500),
		Message:       "Two extra posts included",
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		for _, n := range f.notifier.calls() {
			if n.UserID == f.brand.ID && n.Type == repositories.NotificationTypeCampaignNegotiate {
				return n.Message == "The influencer proposed a new budget of $1500.00 for 'Spring launch'. Message: Two extra posts included"
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestRejectCampaign_NoReasonKeepsMessagePlain(t *testing.T) {
	t.Parallel()

	brand := &models.User{BaseModel: models.BaseModel{ID: "brand-1"}, Role: models.UserRoleBrand}
	influencer := &models.User{BaseModel: models.BaseModel{ID: "inf-1"}, Role: models.UserRoleInfluencer}
	campaign := &models.Campaign{
		BrandID:      brand.ID,
		InfluencerID: influencer.ID,
		Title:        "Spring launch",
		Status:       models.CampaignStatusPending,
	}

	event, err := applyCampaignAction(campaign, CampaignActionReject, influencer, "", nil)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Your campaign 'Spring launch' was rejected", event.Message)
}
