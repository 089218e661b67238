package levelup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/content"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
	mockrepo "github.com/rhydlewis/adventurer-rpg-sub002/internal/repositories/characters/mock"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/rules/progression"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/services/levelup"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/testutils"
)

type LevelUpServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepository *mockrepo.MockRepository
	service        levelup.Service
	ctx            context.Context
}

func (s *LevelUpServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepository = mockrepo.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	tables, err := content.LoadDefault()
	s.Require().NoError(err)

	s.service = levelup.NewService(&levelup.ServiceConfig{
		Repository: s.mockRepository,
		Resolver:   progression.NewResolver(&progression.Config{Table: tables, Catalog: tables}),
		Templates:  tables,
	})
}

func (s *LevelUpServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLevelUpServiceSuite(t *testing.T) {
	suite.Run(t, new(LevelUpServiceTestSuite))
}

func (s *LevelUpServiceTestSuite) wizard() *character.Character {
	char := testutils.CreateTestWizard("wiz-1", 2)
	char.KnownSpells = []string{"fire_bolt", "ray_of_frost", "acid_splash"}
	return char
}

func (s *LevelUpServiceTestSuite) TestPreview_Wizard() {
	s.mockRepository.EXPECT().Get(gomock.Any(), "wiz-1").Return(s.wizard(), nil)

	preview, err := s.service.Preview(s.ctx, "wiz-1", 2)
	s.Require().NoError(err)
	s.Require().NotNil(preview.Learning)
	s.Equal(1, preview.Learning.SpellsToSelect)
	s.Equal(1, preview.Learning.SpellLevel)
	s.Len(preview.Learning.AvailableSpells, 5)
}

func (s *LevelUpServiceTestSuite) TestPreview_NonCaster() {
	s.mockRepository.EXPECT().Get(gomock.Any(), "fig-1").Return(testutils.CreateTestFighter("fig-1"), nil)

	preview, err := s.service.Preview(s.ctx, "fig-1", 2)
	s.Require().NoError(err)
	s.Nil(preview.Learning)
}

func (s *LevelUpServiceTestSuite) TestPreview_LevelMustIncrease() {
	s.mockRepository.EXPECT().Get(gomock.Any(), "wiz-1").Return(s.wizard(), nil)

	_, err := s.service.Preview(s.ctx, "wiz-1", 1)
	s.True(rpgerr.IsFailedPrecondition(err))
}

func (s *LevelUpServiceTestSuite) TestCommit_LearnsSpellAndRaisesSlots() {
	original := s.wizard()
	original.Resources.UseSpellSlot(1)
	s.mockRepository.EXPECT().Get(gomock.Any(), "wiz-1").Return(original, nil)
	s.mockRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := s.service.Commit(s.ctx, &levelup.CommitInput{
		CharacterID: "wiz-1",
		NewLevel:    2,
		SpellIDs:    []string{"magic_missile"},
	})
	s.Require().NoError(err)

	s.Equal(2, updated.Level)
	s.Equal([]string{"fire_bolt", "ray_of_frost", "acid_splash", "magic_missile"}, updated.KnownSpells)
	s.Equal(character.SlotPool{Current: 2, Max: 3}, updated.Resources.SpellSlots["level1"])

	s.Equal(1, original.Level, "the loaded character is not modified")
	s.Len(original.KnownSpells, 3)
}

func (s *LevelUpServiceTestSuite) TestCommit_NonCaster() {
	s.mockRepository.EXPECT().Get(gomock.Any(), "fig-1").Return(testutils.CreateTestFighter("fig-1"), nil)
	s.mockRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := s.service.Commit(s.ctx, &levelup.CommitInput{CharacterID: "fig-1", NewLevel: 2})
	s.Require().NoError(err)
	s.Equal(2, updated.Level)
	s.Nil(updated.Resources.SpellSlots)
}

func (s *LevelUpServiceTestSuite) TestCommit_RejectsBadSelections() {
	tests := []struct {
		name     string
		spellIDs []string
	}{
		{name: "not offered", spellIDs: []string{"cure_wounds"}},
		{name: "already known", spellIDs: []string{"fire_bolt"}},
		{name: "too many", spellIDs: []string{"magic_missile", "sleep"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockRepository.EXPECT().Get(gomock.Any(), "wiz-1").Return(s.wizard(), nil)

			_, err := s.service.Commit(s.ctx, &levelup.CommitInput{
				CharacterID: "wiz-1",
				NewLevel:    2,
				SpellIDs:    tt.spellIDs,
			})
			s.True(rpgerr.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *LevelUpServiceTestSuite) TestCommit_NonCasterCannotPickSpells() {
	s.mockRepository.EXPECT().Get(gomock.Any(), "fig-1").Return(testutils.CreateTestFighter("fig-1"), nil)

	_, err := s.service.Commit(s.ctx, &levelup.CommitInput{
		CharacterID: "fig-1",
		NewLevel:    2,
		SpellIDs:    []string{"magic_missile"},
	})
	s.True(rpgerr.IsInvalidArgument(err))
}

func (s *LevelUpServiceTestSuite) TestCommit_NotFound() {
	s.mockRepository.EXPECT().Get(gomock.Any(), "ghost").Return(nil, rpgerr.NotFound("character not found"))

	_, err := s.service.Commit(s.ctx, &levelup.CommitInput{CharacterID: "ghost", NewLevel: 2})
	s.True(rpgerr.IsNotFound(err))
}
