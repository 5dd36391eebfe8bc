package models

import "testing"

func TestPasswordHashing(t *testing.T) {
	u := User{Password: "secret123"}
	if err := u.HashPassword(); err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if u.Password == "secret123" {
		t.Fatal("password stored in plain text")
	}
	if !u.ComparePassword("secret123") {
		t.Error("ComparePassword rejected the correct password")
	}
	if u.ComparePassword("wrong") {
		t.Error("ComparePassword accepted a wrong password")
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{"citizen", "volunteer", "ward_officer", "admin"} {
		if !ValidRole(r) {
			t.Errorf("ValidRole(%q) = false, want true", r)
		}
	}
	for _, r := range []string{"", "officer", "Admin"} {
		if ValidRole(r) {
			t.Errorf("ValidRole(%q) = true, want false", r)
		}
	}
}

func TestCanManageReports(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleCitizen, false},
		{RoleVolunteer, false},
		{RoleWardOfficer, true},
		{RoleAdmin, true},
	}
	for _, tt := range tests {
		if got := tt.role.CanManageReports(); got != tt.want {
			t.Errorf("%s.CanManageReports() = %v, want %v", tt.role, got, tt.want)
		}
	}
}
