package models_test

import (
	"github.com/pocketledger/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSeedReferenceData() {
	a := suite.createTestAccount(models.Account{})
	suite.Require().Nil(models.SeedReferenceData(a.ID))

	categories, err := models.ListCategories(a.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{"Lunch", "Dinner", "Travel", "Bills", "Snacks"}, categories)

	people, err := models.ListPeople(a.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{"Me"}, people)

	// Seeding twice does not duplicate anything
	suite.Require().Nil(models.SeedReferenceData(a.ID))
	categories, err = models.ListCategories(a.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, len(models.DefaultCategories))
}

func (suite *TestSuiteStandard) TestAddCategoryIdempotent() {
	a := suite.createTestAccount(models.Account{})

	suite.Require().Nil(models.AddCategory(a.ID, "Groceries"))
	suite.Require().Nil(models.AddCategory(a.ID, "Groceries"))
	suite.Require().Nil(models.AddCategory(a.ID, " Groceries "))

	categories, err := models.ListCategories(a.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{"Groceries"}, categories)
}

func (suite *TestSuiteStandard) TestAddReferenceEmptyName() {
	a := suite.createTestAccount(models.Account{})

	suite.Assert().ErrorIs(models.AddCategory(a.ID, "  "), models.ErrNameEmpty)
	suite.Assert().ErrorIs(models.AddPerson(a.ID, ""), models.ErrNameEmpty)
}

func (suite *TestSuiteStandard) TestListInsertionOrder() {
	a := suite.createTestAccount(models.Account{})

	names := []string{"Zoe", "Adam", "Mia", "Bob"}
	for _, name := range names {
		suite.Require().Nil(models.AddPerson(a.ID, name))
	}

	people, err := models.ListPeople(a.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(names, people, "people must be listed in insertion order, not sorted")
}

func (suite *TestSuiteStandard) TestReferenceAccountIsolation() {
	a := suite.createTestAccount(models.Account{})
	b := suite.createTestAccount(models.Account{})

	suite.Require().Nil(models.AddCategory(a.ID, "Rent"))
	suite.Require().Nil(models.AddCategory(b.ID, "Rent"))
	suite.Require().Nil(models.AddPerson(a.ID, "Bob"))

	suite.Require().Nil(models.DeleteCategory(b.ID, "Rent"))

	categories, err := models.ListCategories(a.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{"Rent"}, categories)

	categories, err = models.ListCategories(b.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(categories)

	people, err := models.ListPeople(b.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(people)
}

func (suite *TestSuiteStandard) TestDeletePerson() {
	a := suite.createTestAccount(models.Account{})
	suite.Require().Nil(models.SeedReferenceData(a.ID))
	suite.Require().Nil(models.AddPerson(a.ID, "Bob"))

	suite.Require().Nil(models.DeletePerson(a.ID, "Bob"))

	// Absent names are a no-op
	suite.Require().Nil(models.DeletePerson(a.ID, "Bob"))
	suite.Require().Nil(models.DeleteCategory(a.ID, "Does not exist"))

	people, err := models.ListPeople(a.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{"Me"}, people)
}

func (suite *TestSuiteStandard) TestDeleteDefaultPerson() {
	for i := 0; i < 3; i++ {
		a := suite.createTestAccount(models.Account{})
		suite.Require().Nil(models.SeedReferenceData(a.ID))

		suite.Assert().ErrorIs(models.DeletePerson(a.ID, "Me"), models.ErrProtectedPerson)

		people, err := models.ListPeople(a.ID)
		suite.Require().Nil(err)
		suite.Assert().Contains(people, "Me")
	}
}

func (suite *TestSuiteStandard) TestDeleteReferenceKeepsExpenses() {
	a := suite.createTestAccount(models.Account{})
	suite.Require().Nil(models.AddCategory(a.ID, "Travel"))
	suite.Require().Nil(models.AddPerson(a.ID, "Bob"))
	e := suite.createTestExpense(a.ID, models.ExpenseCreate{Category: "Travel", Person: "Bob"})

	suite.Require().Nil(models.DeleteCategory(a.ID, "Travel"))
	suite.Require().Nil(models.DeletePerson(a.ID, "Bob"))

	found, err := models.GetExpense(a.ID, e.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Travel", found.Category)
	suite.Assert().Equal("Bob", found.Person)
}

func (suite *TestSuiteStandard) TestReferenceUnknownAccount() {
	a := suite.createTestAccount(models.Account{})
	suite.Require().Nil(models.DB.Delete(&a).Error)

	suite.Assert().ErrorIs(models.AddCategory(a.ID, "Lunch"), models.ErrAccountGone)
}

func (suite *TestSuiteStandard) TestReferenceDBClosed() {
	a := suite.createTestAccount(models.Account{})
	suite.CloseDB()

	suite.Assert().ErrorIs(models.AddCategory(a.ID, "Lunch"), models.ErrGeneral)
	suite.Assert().ErrorIs(models.SeedReferenceData(a.ID), models.ErrGeneral)

	_, err := models.ListPeople(a.ID)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
