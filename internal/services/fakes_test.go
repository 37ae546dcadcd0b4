package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"influmatch_backend/internal/models"
	"influmatch_backend/internal/payments"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/services/dto"
)

// In-memory repository fakes. They reproduce the concurrency contracts of the
// real implementations (CAS on the trial slot, serialized transitions) so the
// services can be tested without a database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	stored.FullName = user.FullName
	stored.IsActive = user.IsActive
	return nil
}

func (r *fakeUserRepo) FindWithFilter(criteria repositories.UserFilter) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if criteria.Role != "" && u.Role != criteria.Role {
			continue
		}
		if criteria.IsApproved != nil && u.IsApproved != *criteria.IsApproved {
			continue
		}
		if criteria.IsActive != nil && u.IsActive != *criteria.IsActive {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Approve(userID string) error {
	return r.mutate(userID, func(u *models.User) { u.IsApproved = true })
}

func (r *fakeUserRepo) Deactivate(userID string) error {
	return r.mutate(userID, func(u *models.User) { u.IsActive = false })
}

func (r *fakeUserRepo) SetSubscriptionActive(userID string, active bool) error {
	return r.mutate(userID, func(u *models.User) { u.HasActiveSubscription = active })
}

func (r *fakeUserRepo) InitTrialStart(userID string, start time.Time) (*time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	if u.TrialStartTime == nil {
		stamped := start
		u.TrialStartTime = &stamped
	}
	return u.TrialStartTime, nil
}

func (r *fakeUserRepo) ClaimTrialProfileView(userID, profileID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return false, repositories.ErrUserNotFound
	}
	if u.TrialProfileViewedID != nil {
		return false, nil
	}
	claimed := profileID
	u.TrialProfileViewedID = &claimed
	return true, nil
}

func (r *fakeUserRepo) mutate(userID string, fn func(*models.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	fn(u)
	return nil
}

type fakeCampaignRepo struct {
	mu        sync.Mutex
	campaigns map[string]*models.Campaign
}

func newFakeCampaignRepo(campaigns ...*models.Campaign) *fakeCampaignRepo {
	r := &fakeCampaignRepo{campaigns: make(map[string]*models.Campaign)}
	for _, c := range campaigns {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		r.campaigns[c.ID] = c
	}
	return r
}

func (r *fakeCampaignRepo) Create(campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if campaign.ID == "" {
		campaign.ID = uuid.NewString()
	}
	copied := *campaign
	r.campaigns[campaign.ID] = &copied
	return nil
}

func (r *fakeCampaignRepo) FindByID(id string) (*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, repositories.ErrCampaignNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCampaignRepo) FindByBrand(brandID string, limit, offset int) ([]models.Campaign, error) {
	return r.findByParty(func(c *models.Campaign) bool { return c.BrandID == brandID })
}

func (r *fakeCampaignRepo) FindByInfluencer(influencerID string, limit, offset int) ([]models.Campaign, error) {
	return r.findByParty(func(c *models.Campaign) bool { return c.InfluencerID == influencerID })
}

func (r *fakeCampaignRepo) findByParty(match func(*models.Campaign) bool) ([]models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Campaign
	for _, c := range r.campaigns {
		if match(c) {
			out = append(out, *c)
		}
	}
	return out, nil
}

// Transition mirrors the row-lock contract: the mutex serializes concurrent
// transitions and an error from mutate leaves the stored row untouched.
func (r *fakeCampaignRepo) Transition(id string, mutate func(*models.Campaign) error) (*models.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.campaigns[id]
	if !ok {
		return nil, repositories.ErrCampaignNotFound
	}
	working := *stored
	if err := mutate(&working); err != nil {
		return nil, err
	}
	*stored = working
	copied := working
	return &copied, nil
}

type fakePaymentRepo struct {
	mu           sync.Mutex
	payments     map[string]*models.Payment
	campaignRepo *fakeCampaignRepo
}

func newFakePaymentRepo(campaignRepo *fakeCampaignRepo) *fakePaymentRepo {
	return &fakePaymentRepo{
		payments:     make(map[string]*models.Payment),
		campaignRepo: campaignRepo,
	}
}

func (r *fakePaymentRepo) Create(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *fakePaymentRepo) FindByID(id string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, repositories.ErrPaymentNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) FindByBrand(brandID string, limit, offset int) ([]models.Payment, error) {
	return r.findByParty(func(p *models.Payment) bool { return p.BrandID == brandID })
}

func (r *fakePaymentRepo) FindByInfluencer(influencerID string, limit, offset int) ([]models.Payment, error) {
	return r.findByParty(func(p *models.Payment) bool { return p.InfluencerID == influencerID })
}

func (r *fakePaymentRepo) FindByCampaign(campaignID string) ([]models.Payment, error) {
	return r.findByParty(func(p *models.Payment) bool { return p.CampaignID == campaignID })
}

func (r *fakePaymentRepo) findByParty(match func(*models.Payment) bool) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Payment
	for _, p := range r.payments {
		if match(p) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Release(id string, mutate func(*models.Payment, models.CampaignStatus) error) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.payments[id]
	if !ok {
		return nil, repositories.ErrPaymentNotFound
	}

	campaign, err := r.campaignRepo.FindByID(stored.CampaignID)
	if err != nil {
		return nil, err
	}

	working := *stored
	if err := mutate(&working, campaign.Status); err != nil {
		return nil, err
	}
	*stored = working
	copied := working
	return &copied, nil
}

type fakeProfileRepo struct {
	mu        sync.Mutex
	profiles  map[string]*models.InfluencerProfile
	completed map[string]int
}

func newFakeProfileRepo(profiles ...*models.InfluencerProfile) *fakeProfileRepo {
	r := &fakeProfileRepo{
		profiles:  make(map[string]*models.InfluencerProfile),
		completed: make(map[string]int),
	}
	for _, p := range profiles {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(profile *models.InfluencerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == profile.UserID {
			return repositories.ErrProfileAlreadyExists
		}
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeProfileRepo) FindByID(id string) (*models.InfluencerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) FindByUserID(userID string) (*models.InfluencerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) Update(profile *models.InfluencerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; !ok {
		return repositories.ErrProfileNotFound
	}
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeProfileRepo) FindAll(limit, offset int) ([]models.InfluencerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.InfluencerProfile
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfileRepo) IncrementCampaignsCompleted(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed[userID]++
	return nil
}

// fakeNotifier records Notify calls; dispatches happen on goroutines so
// readers must go through calls() or wait with assert.Eventually.
type fakeNotifier struct {
	mu       sync.Mutex
	recorded []recordedNotification
}

type recordedNotification struct {
	UserID      string
	Type        string
	Title       string
	Message     string
	RelatedType string
	RelatedID   string
}

func (f *fakeNotifier) Notify(userID, ntype, title, message, relatedType, relatedID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, recordedNotification{
		UserID: userID, Type: ntype, Title: title, Message: message,
		RelatedType: relatedType, RelatedID: relatedID,
	})
	return nil
}

func (f *fakeNotifier) calls() []recordedNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedNotification, len(f.recorded))
	copy(out, f.recorded)
	return out
}

func (f *fakeNotifier) GetUserNotifications(userID string, criteria repositories.NotificationCriteria) (*dto.NotificationListResponse, error) {
	return &dto.NotificationListResponse{}, nil
}

func (f *fakeNotifier) MarkAsRead(userID, notificationID string) error { return nil }
func (f *fakeNotifier) MarkAllAsRead(userID string) error              { return nil }
func (f *fakeNotifier) GetUnreadCount(userID string) (int64, error)    { return 0, nil }

// fakeProvider implements payments.Provider with a switchable failure.
type fakeProvider struct {
	mu       sync.Mutex
	err      error
	captures []payments.CaptureRequest
}

func (p *fakeProvider) Capture(ctx context.Context, req payments.CaptureRequest) (*payments.CaptureResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	p.captures = append(p.captures, req)
	return &payments.CaptureResult{
		PaymentIntentID: "pi_test_" + uuid.NewString(),
		ChargeID:        "ch_test_" + uuid.NewString(),
	}, nil
}
