package repositories

import (
	"testing"

	"alexweb-api/models"
)

func TestTestimonialListOrdersBySortOrder(t *testing.T) {
	repo := NewTestimonialRepository(newTestDB(t))

	repo.Create(&models.TestimonialCreateInput{
		Name: "James Carter", Location: "Austin, TX", Rating: 5,
		Text: "Worth the trip.", Date: "February 2024", SortOrder: 1,
	})
	repo.Create(&models.TestimonialCreateInput{
		Name: "Maria Gonzalez", Location: "San Antonio, TX", Rating: 5,
		Text: "Best buying experience.", Date: "March 2024", SortOrder: 0,
	})

	testimonials, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if testimonials[0].Name != "Maria Gonzalez" || testimonials[1].Name != "James Carter" {
		t.Fatalf("expected sort_order ordering, got %+v", testimonials)
	}
}

func TestTestimonialPartialUpdate(t *testing.T) {
	repo := NewTestimonialRepository(newTestDB(t))

	created, _ := repo.Create(&models.TestimonialCreateInput{
		Name: "Linda Tran", Location: "San Antonio, TX", Rating: 4,
		Text: "Quick financing and friendly staff.", Date: "January 2024",
	})

	updated, err := repo.Update(created.ID, &models.TestimonialUpdateInput{
		Rating: intPtr(5),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Rating != 5 {
		t.Fatalf("expected rating 5, got %d", updated.Rating)
	}
	if updated.Text != created.Text || updated.Name != created.Name {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestStaffCRUD(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))

	created, err := repo.Create(&models.StaffMemberCreateInput{
		Name: "Dana Whitfield", Position: "Finance Manager", Department: "Finance",
		Email: "dana@alexweb.com", Phone: "(210) 555-0102",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := repo.Update(created.ID, &models.StaffMemberUpdateInput{
		Position: strPtr("Senior Finance Manager"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Position != "Senior Finance Manager" || updated.Email != created.Email {
		t.Fatalf("merge failed: %+v", updated)
	}

	deleted, _ := repo.Delete(created.ID)
	if !deleted {
		t.Fatalf("expected delete to report true")
	}
	member, err := repo.GetByID(created.ID)
	if err != nil || member != nil {
		t.Fatalf("expected not-found after delete, got %+v, %v", member, err)
	}
}

func TestBackgroundImageURLListOrder(t *testing.T) {
	repo := NewBackgroundImageRepository(newTestDB(t))

	repo.Create(&models.BackgroundImageCreateInput{ImageURL: "/b.jpg", SortOrder: 1})
	repo.Create(&models.BackgroundImageCreateInput{ImageURL: "/a.jpg", SortOrder: 0})

	urls, err := repo.GetAllURLs()
	if err != nil {
		t.Fatalf("GetAllURLs: %v", err)
	}
	if len(urls) != 2 || urls[0] != "/a.jpg" || urls[1] != "/b.jpg" {
		t.Fatalf("expected sort_order url list, got %v", urls)
	}
}

func TestContactMessageRoundtrip(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))

	created, err := repo.Create(&models.ContactMessageCreateInput{
		Name:    "Maria Gonzalez",
		Email:   "maria@example.com",
		Subject: "Trade-in question",
		Message: "Do you take trade-ins on financed vehicles?",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned id and timestamps: %+v", created)
	}

	fetched, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fetched.Subject != "Trade-in question" || fetched.Phone != nil {
		t.Fatalf("unexpected roundtrip result: %+v", fetched)
	}
}

func TestFinanceApplicationStoresOpaqueDocument(t *testing.T) {
	repo := NewFinanceRepository(newTestDB(t))

	created, err := repo.Create(models.JSONMap{
		"firstName":      "Maria",
		"lastName":       "Gonzalez",
		"residenceType":  "own",
		"aFieldTheFormGrewLater": "still stored",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	fetched, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fetched.Data["firstName"] != "Maria" {
		t.Fatalf("document lost fields: %+v", fetched.Data)
	}
	if fetched.Data["aFieldTheFormGrewLater"] != "still stored" {
		t.Fatalf("schema-free field dropped: %+v", fetched.Data)
	}
}
