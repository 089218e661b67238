package character_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/content"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/repositories/characters"
	mockrepo "github.com/rhydlewis/adventurer-rpg-sub002/internal/repositories/characters/mock"
	charService "github.com/rhydlewis/adventurer-rpg-sub002/internal/services/character"
	mockuuid "github.com/rhydlewis/adventurer-rpg-sub002/internal/uuid/mock"
)

// CharacterServiceTestSuite defines the test suite for character service
type CharacterServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepository *mockrepo.MockRepository
	mockUUID       *mockuuid.MockGenerator
	service        charService.Service
	ctx            context.Context
}

func (s *CharacterServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepository = mockrepo.NewMockRepository(s.ctrl)
	s.mockUUID = mockuuid.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()

	tables, err := content.LoadDefault()
	s.Require().NoError(err)

	s.service = charService.NewService(&charService.ServiceConfig{
		Repository:    s.mockRepository,
		Templates:     tables,
		UUIDGenerator: s.mockUUID,
	})
}

func (s *CharacterServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCharacterServiceSuite(t *testing.T) {
	suite.Run(t, new(CharacterServiceTestSuite))
}

func (s *CharacterServiceTestSuite) TestCreateCharacter_Wizard() {
	s.mockUUID.EXPECT().New().Return("wiz-uuid")
	s.mockRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	char, err := s.service.CreateCharacter(s.ctx, &charService.CreateCharacterInput{
		Name:  " Elminster ",
		Class: character.ClassWizard,
	})
	s.Require().NoError(err)

	s.Equal("wiz-uuid", char.ID)
	s.Equal("Elminster", char.Name)
	s.Equal(1, char.Level)
	s.Equal("Quarterstaff", char.Equipment.Weapon.GetName())
	s.Equal(character.SlotPool{Current: 2, Max: 2}, char.Resources.SpellSlots["level1"])
	s.Equal([]string{"fire_bolt", "ray_of_frost", "acid_splash"}, char.KnownSpells)

	ability, ok := char.Resources.FindAbility("Arcane Recovery")
	s.Require().True(ok)
	s.Equal(1, ability.CurrentUses)
}

func (s *CharacterServiceTestSuite) TestCreateCharacter_FighterAtLevelThree() {
	s.mockUUID.EXPECT().New().Return("fig-uuid")
	s.mockRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	char, err := s.service.CreateCharacter(s.ctx, &charService.CreateCharacterInput{
		Name:            "Conan",
		Class:           character.ClassFighter,
		Level:           3,
		MechanicsLocked: true,
	})
	s.Require().NoError(err)

	s.Equal(3, char.Level)
	s.True(char.MechanicsLocked)
	s.Nil(char.Resources.SpellSlots)
	s.Empty(char.KnownSpells)
	s.Len(char.Resources.Abilities, 2)
}

func (s *CharacterServiceTestSuite) TestCreateCharacter_TemplateNotShared() {
	s.mockUUID.EXPECT().New().Return("a").Times(1)
	s.mockUUID.EXPECT().New().Return("b").Times(1)
	s.mockRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := s.service.CreateCharacter(s.ctx, &charService.CreateCharacterInput{Name: "A", Class: character.ClassCleric})
	s.Require().NoError(err)
	first.Resources.UseSpellSlot(1)
	first.Resources.Abilities[0].Use()

	second, err := s.service.CreateCharacter(s.ctx, &charService.CreateCharacterInput{Name: "B", Class: character.ClassCleric})
	s.Require().NoError(err)
	s.Equal(2, second.Resources.SpellSlots["level1"].Current)
	s.Equal(1, second.Resources.Abilities[0].CurrentUses)
}

func (s *CharacterServiceTestSuite) TestCreateCharacter_Validation() {
	tests := []struct {
		name  string
		input *charService.CreateCharacterInput
	}{
		{name: "nil input", input: nil},
		{name: "missing name", input: &charService.CreateCharacterInput{Class: character.ClassRogue}},
		{name: "unknown class", input: &charService.CreateCharacterInput{Name: "X", Class: "Bard"}},
		{name: "negative level", input: &charService.CreateCharacterInput{Name: "X", Class: character.ClassRogue, Level: -1}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.CreateCharacter(s.ctx, tt.input)
			s.True(rpgerr.IsInvalidArgument(err))
		})
	}
}

func (s *CharacterServiceTestSuite) TestCreateCharacter_RepositoryError() {
	s.mockUUID.EXPECT().New().Return("dup")
	s.mockRepository.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(rpgerr.AlreadyExistsf("character with ID '%s' already exists", "dup"))

	_, err := s.service.CreateCharacter(s.ctx, &charService.CreateCharacterInput{Name: "Dup", Class: character.ClassRogue})
	s.True(rpgerr.IsAlreadyExists(err))
}

func (s *CharacterServiceTestSuite) TestGetCharacter() {
	expected := &character.Character{ID: "c1", Name: "Test"}
	s.mockRepository.EXPECT().Get(s.ctx, "c1").Return(expected, nil)

	got, err := s.service.GetCharacter(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal(expected, got)

	_, err = s.service.GetCharacter(s.ctx, "")
	s.True(rpgerr.IsInvalidArgument(err))
}

func (s *CharacterServiceTestSuite) TestListCharacters_Error() {
	s.mockRepository.EXPECT().List(s.ctx).Return(nil, errors.New("redis down"))

	_, err := s.service.ListCharacters(s.ctx)
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to list characters")
}

func (s *CharacterServiceTestSuite) TestDeleteCharacter() {
	s.mockRepository.EXPECT().Delete(s.ctx, "c1").Return(nil)
	s.NoError(s.service.DeleteCharacter(s.ctx, "c1"))
}

// TestCreateCharacter_InMemory runs the service against a real repository
func TestCreateCharacter_InMemory(t *testing.T) {
	tables, err := content.LoadDefault()
	if err != nil {
		t.Fatal(err)
	}

	repo := characters.NewInMemoryRepository()
	svc := charService.NewService(&charService.ServiceConfig{
		Repository: repo,
		Templates:  tables,
	})

	created, err := svc.CreateCharacter(context.Background(), &charService.CreateCharacterInput{
		Name:  "Mira",
		Class: character.ClassRogue,
	})
	if err != nil {
		t.Fatal(err)
	}

	list, err := svc.ListCharacters(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("expected the created character to be listed, got %+v", list)
	}
}
