// internal/service/legacy.go
package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/foodyhq/backend/internal/domain"
	"github.com/foodyhq/backend/internal/model"
	"github.com/foodyhq/backend/internal/repository"
)

// LegacyService translates the old flat merchant payload shape onto the
// current identity operations. It never writes store state of its own; it
// only rewrites payloads and delegates.
type LegacyService struct {
	identity  *IdentityService
	merchants repository.MerchantRepositoryIface
}

func NewLegacyService(identity *IdentityService, merchants repository.MerchantRepositoryIface) *LegacyService {
	return &LegacyService{identity: identity, merchants: merchants}
}

// LegacyCredentials is the flat response shape the old merchant client
// stores: a textual business id plus an opaque key it replays on later calls.
// The business id is the first location's id; the key is the session token.
type LegacyCredentials struct {
	RestaurantID string `json:"restaurant_id"`
	APIKey       string `json:"api_key"`
}

type LegacyRegisterOutput struct {
	LegacyCredentials
	UserID     int64 `json:"user_id"`
	OrgID      int64 `json:"org_id"`
	LocationID int64 `json:"location_id"`
}

// TranslateRegister maps the legacy aliases onto the canonical registration
// input. Canonical keys win when both are present. A missing password is
// replaced with a server-generated random one; the generated value is
// returned to no one, which is a known product gap kept for compatibility
// with a caller that never collected a password.
func (s *LegacyService) TranslateRegister(payload map[string]any) (RegisterInput, bool) {
	input := RegisterInput{
		Name:      aliasField(payload, "name", "merchant_name"),
		Phone:     aliasField(payload, "phone", "login"),
		Password:  aliasField(payload, "password", "pass"),
		City:      strings.TrimSpace(stringField(payload, "city")),
		Address:   strings.TrimSpace(stringField(payload, "address")),
		CloseTime: strings.TrimSpace(stringField(payload, "close_time")),
		Timezone:  strings.TrimSpace(stringField(payload, "timezone")),
	}

	generated := false
	if input.Password == "" {
		input.Password = GeneratePassword(12)
		generated = true
	}
	return input, generated
}

func (s *LegacyService) Register(ctx context.Context, payload map[string]any) (*LegacyRegisterOutput, string, error) {
	input, _ := s.TranslateRegister(payload)

	out, err := s.identity.Register(ctx, input)
	if err != nil {
		return nil, "", err
	}

	return &LegacyRegisterOutput{
		LegacyCredentials: LegacyCredentials{
			RestaurantID: strconv.FormatInt(out.LocationID, 10),
			APIKey:       out.Token,
		},
		UserID:     out.User.ID,
		OrgID:      out.OrgID,
		LocationID: out.LocationID,
	}, out.Token, nil
}

func (s *LegacyService) Login(ctx context.Context, payload map[string]any) (*LegacyCredentials, string, error) {
	input := LoginInput{
		Phone:    aliasField(payload, "phone", "login"),
		Password: aliasField(payload, "password", "pass"),
	}

	out, err := s.identity.Login(ctx, input)
	if err != nil {
		return nil, "", err
	}

	creds := &LegacyCredentials{APIKey: out.Token}
	if profile, err := s.identity.Me(ctx, out.User); err == nil && len(profile.Locations) > 0 {
		creds.RestaurantID = strconv.FormatInt(profile.Locations[0].ID, 10)
	}
	return creds, out.Token, nil
}

// LegacyProfile is the flat "me" shape the old client renders.
type LegacyProfile struct {
	RestaurantID string `json:"restaurant_id"`
	MerchantName string `json:"merchant_name"`
	Login        string `json:"login"`
	Address      string `json:"address"`
	CloseTime    string `json:"close_time"`
}

func (s *LegacyService) Me(ctx context.Context, user *model.User) (*LegacyProfile, error) {
	profile, err := s.identity.Me(ctx, user)
	if err != nil {
		return nil, err
	}

	out := &LegacyProfile{
		MerchantName: user.Name,
		Login:        user.Phone,
	}
	if len(profile.Organizations) > 0 {
		out.MerchantName = profile.Organizations[0].Name
	}
	if len(profile.Locations) > 0 {
		loc := profile.Locations[0]
		out.RestaurantID = strconv.FormatInt(loc.ID, 10)
		out.Address = loc.Address
		out.CloseTime = loc.CloseTime
	}
	return out, nil
}

// MerchantProfile reads an old merchant row by its business key. Historical
// stores keep resolving even though new flows never create merchants.
func (s *LegacyService) MerchantProfile(ctx context.Context, restaurantID string) (*model.Merchant, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return nil, domain.Validation("restaurant_id")
	}
	return s.merchants.FindByBusinessKey(ctx, restaurantID)
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratePassword returns a random alphanumeric password of length n.
func GeneratePassword(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the process has no usable entropy
			// source; nothing sensible can continue.
			panic(fmt.Sprintf("reading random bytes: %v", err))
		}
		out[i] = passwordAlphabet[idx.Int64()]
	}
	return string(out)
}

func aliasField(payload map[string]any, canonical, legacy string) string {
	if v := strings.TrimSpace(stringField(payload, canonical)); v != "" {
		return v
	}
	return strings.TrimSpace(stringField(payload, legacy))
}
