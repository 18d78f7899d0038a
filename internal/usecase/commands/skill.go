package commands

import (
	"context"
	"log/slog"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/domain/identity"
	dompayment "skill-swap-core/internal/domain/payment"
	"skill-swap-core/internal/domain/skill"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/pkg/clock"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type SlotInput struct {
	Label       string
	MeetingLink string
}

type ListSkillInput struct {
	Name        string
	Description string
	Rate        decimal.Decimal
	Category    string
	Level       string
	Slots       []SlotInput
}

type ListSkillResult struct {
	Skill *skill.Skill
	// FeeTransactionID is empty when no listing fee applies.
	FeeTransactionID string
}

type SkillCommands interface {
	ListSkill(ctx context.Context, sc auth.SessionContext, in ListSkillInput) (*ListSkillResult, error)
}

type ListingFee struct {
	Amount   decimal.Decimal
	Receiver identity.Identity
}

type skillUseCaseImpl struct {
	skills   shared.SkillRepository
	users    shared.UserRepository
	registry shared.ContractClient
	gateway  shared.PaymentGateway
	executor shared.PaymentExecutor
	fee      ListingFee
	notifier shared.Notifier
	clock    clock.Clock
}

func NewSkillUseCase(
	skills shared.SkillRepository,
	users shared.UserRepository,
	registry shared.ContractClient,
	gateway shared.PaymentGateway,
	executors PaymentExecutors,
	fee ListingFee,
	notifier shared.Notifier,
	clock clock.Clock,
) SkillCommands {
	return &skillUseCaseImpl{
		skills:   skills,
		users:    users,
		registry: registry,
		gateway:  gateway,
		executor: executors.Primary,
		fee:      fee,
		notifier: notifier,
		clock:    clock,
	}
}

func (uc *skillUseCaseImpl) ListSkill(ctx context.Context, sc auth.SessionContext, in ListSkillInput) (*ListSkillResult, error) {
	owner, err := sc.RequireIdentity()
	if err != nil {
		return nil, validation(err)
	}
	draft, err := buildDraft(owner, in)
	if err != nil {
		return nil, validation(err)
	}
	if _, err := uc.users.FindByIdentity(ctx, owner); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrNotRegistered, errs.ErrUnauthorized)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	result := &ListSkillResult{}
	if uc.fee.Amount.IsPositive() {
		txID, err := uc.gateway.Pay(ctx, uc.executor, dompayment.Payment{
			Amount:   uc.fee.Amount,
			Sender:   owner,
			Receiver: uc.fee.Receiver,
			Memo:     "listing fee",
		})
		if err != nil {
			return nil, errs.Wrap(err, "listing fee payment failed")
		}
		result.FeeTransactionID = txID
	}

	slots := make([]string, 0, len(draft.Slots))
	for _, s := range draft.Slots {
		slots = append(slots, s.Label())
	}
	id, err := uc.registry.ListSkill(ctx, owner, shared.SkillListing{
		Name:     draft.Name,
		Category: draft.Category.String(),
		Level:    draft.Level.String(),
		Rate:     draft.Rate.Amount(),
		Slots:    slots,
	})
	if err != nil {
		return nil, errs.Mark(errs.Mark(err, ErrRegistryFailure), errs.ErrUpstream)
	}

	sk := skill.NewSkill(id, draft, uc.clock.Now())
	if err := uc.skills.Save(ctx, sk); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	slog.Info("skill listed", "skill_id", id, "owner", owner.String(), "category", draft.Category.String())
	uc.notifier.Notify(ctx, shared.Notification{
		Level:     shared.LevelSuccess,
		Topic:     "skill.listed",
		Message:   "Skill listed: " + draft.Name,
		Recipient: owner,
		At:        uc.clock.Now(),
	})
	result.Skill = sk
	return result, nil
}

func buildDraft(owner identity.Identity, in ListSkillInput) (skill.Draft, error) {
	rate, err := skill.NewRate(in.Rate)
	if err != nil {
		return skill.Draft{}, err
	}
	category, err := skill.NewCategory(in.Category)
	if err != nil {
		return skill.Draft{}, err
	}
	level, err := skill.NewLevel(in.Level)
	if err != nil {
		return skill.Draft{}, err
	}
	slots := make([]skill.Slot, 0, len(in.Slots))
	for _, s := range in.Slots {
		slot, err := skill.NewSlot(s.Label, s.MeetingLink)
		if err != nil {
			return skill.Draft{}, err
		}
		slots = append(slots, slot)
	}
	return skill.NewDraft(owner, in.Name, in.Description, rate, category, level, slots)
}
