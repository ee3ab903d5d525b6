package roleRepo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"shiftmanager/backend"
	"shiftmanager/models"
)

func newRepo(t *testing.T, handler http.HandlerFunc) RoleRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewRESTRoleRepo(backend.NewClientWith(server.URL, server.Client(), zap.NewNop()))
}

func TestAll(t *testing.T) {
	var gotPath string
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(models.RolePage{Data: []models.Role{{ID: 1, Name: "Cashier"}, {ID: 2, Name: "Cook"}}})
	})

	roles, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/role/all" {
		t.Errorf("expected path /role/all, got %s", gotPath)
	}
	if len(roles) != 2 || roles[0].Name != "Cashier" {
		t.Errorf("unexpected roles %v", roles)
	}
}

func TestForEmployee(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]models.Role{{ID: 2, Name: "Cook"}})
	})

	roles, err := repo.ForEmployee(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/Role/employee" {
		t.Errorf("expected path /Role/employee, got %s", gotPath)
	}
	if got := gotQuery["employeeId"]; len(got) != 1 || got[0] != "7" {
		t.Errorf("expected employeeId=7, got %v", got)
	}
	if len(roles) != 1 || roles[0].ID != 2 {
		t.Errorf("unexpected roles %v", roles)
	}
}

func TestSave(t *testing.T) {
	t.Run("CreateUsesPostWithoutID", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotBody map[string]any
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(map[string]any{"id": 3, "name": "Baker"})
		})

		if err := repo.Save(context.Background(), models.Role{Name: "Baker"}, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodPost || gotPath != "/role" {
			t.Errorf("expected POST /role, got %s %s", gotMethod, gotPath)
		}
		if gotBody["Name"] != "Baker" {
			t.Errorf("expected Name Baker, got %v", gotBody)
		}
		if _, present := gotBody["Id"]; present {
			t.Error("expected Id to be omitted on create")
		}
	})

	t.Run("UpdateUsesPutWithID", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotBody map[string]any
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotBody)
			json.NewEncoder(w).Encode(map[string]any{"id": 3, "name": "Baker"})
		})

		if err := repo.Save(context.Background(), models.Role{ID: 3, Name: "Baker"}, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodPut || gotPath != "/role/3" {
			t.Errorf("expected PUT /role/3, got %s %s", gotMethod, gotPath)
		}
		if got, ok := gotBody["Id"].(float64); !ok || int(got) != 3 {
			t.Errorf("expected Id 3 in body, got %v", gotBody["Id"])
		}
	})

	t.Run("EmptyBodyIsAFailure", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		if err := repo.Save(context.Background(), models.Role{Name: "Baker"}, false); err == nil {
			t.Error("expected error for empty save response")
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "Role not found"})
		})

		_, err := repo.Delete(context.Background(), 9)
		if err == nil {
			t.Fatal("expected error")
		}
		if !backend.IsNotFound(err) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.DeleteResult{IsSuccess: true, Message: "Role deleted"})
		})

		result, err := repo.Delete(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsSuccess || result.Message != "Role deleted" {
			t.Errorf("unexpected result %+v", result)
		}
	})
}
