package relation

import (
	"context"
	"errors"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// RelationService is the ledger for the three unique-pair relations.
	// The variants share one add/remove shape and differ only in their
	// self-reference predicate and error naming.
	RelationService interface {
		Add(ctx context.Context, kind domain.RelationKind, userID, targetID string) error
		Remove(ctx context.Context, kind domain.RelationKind, userID, targetID string) error
		Exists(ctx context.Context, kind domain.RelationKind, userID, targetID string) (bool, error)
	}

	relationService struct {
		relationRepository RelationRepository
	}
)

func NewRelationService(relationRepository RelationRepository) RelationService {
	return &relationService{relationRepository: relationRepository}
}

func kindErrors(kind domain.RelationKind) (self, exists, missing error) {
	if kind == domain.RelationSubscription {
		return domain.ErrSelfSubscription, domain.ErrAlreadySubscribed, domain.ErrSubscriptionMissing
	}
	return domain.ErrSelfRelation, domain.ErrRelationExists, domain.ErrRelationNotFound
}

func (s *relationService) Add(ctx context.Context, kind domain.RelationKind, userID, targetID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	targetUUID, err := uuid.Parse(targetID)
	if err != nil {
		return domain.ErrParseUUID
	}

	selfErr, existsErr, _ := kindErrors(kind)

	// Resolve the identity the self-reference check runs against: the
	// subscription target is the author itself, favorite/cart resolve the
	// recipe's author.
	if kind == domain.RelationSubscription {
		found, err := s.relationRepository.UserExists(ctx, targetUUID)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrUserNotFound
		}
		if userUUID == targetUUID {
			return selfErr
		}
	} else {
		author, err := s.relationRepository.GetRecipeAuthor(ctx, targetUUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecipeNotFound
			}
			return err
		}
		if userUUID == author {
			return selfErr
		}
	}

	found, err := s.relationRepository.Exists(ctx, kind, userUUID, targetUUID)
	if err != nil {
		return err
	}
	if found {
		return existsErr
	}

	if err := s.relationRepository.Create(ctx, kind, userUUID, targetUUID); err != nil {
		if errors.Is(err, domain.ErrRelationExists) {
			return existsErr
		}
		return err
	}
	return nil
}

func (s *relationService) Remove(ctx context.Context, kind domain.RelationKind, userID, targetID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	targetUUID, err := uuid.Parse(targetID)
	if err != nil {
		return domain.ErrParseUUID
	}

	_, _, missingErr := kindErrors(kind)

	removed, err := s.relationRepository.Delete(ctx, kind, userUUID, targetUUID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return missingErr
	}
	return nil
}

func (s *relationService) Exists(ctx context.Context, kind domain.RelationKind, userID, targetID string) (bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, domain.ErrParseUUID
	}
	targetUUID, err := uuid.Parse(targetID)
	if err != nil {
		return false, domain.ErrParseUUID
	}
	return s.relationRepository.Exists(ctx, kind, userUUID, targetUUID)
}
