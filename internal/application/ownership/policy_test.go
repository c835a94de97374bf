package ownership

import (
	"testing"

	"github.com/Naveen2070/Hive-Movie/internal/domain/entity"
)

func TestCheckOwnershipAllowsOwner(t *testing.T) {
	cinema := &entity.Cinema{OrganizerID: "org-1"}
	if err := CheckOwnership(Principal{UserID: "org-1"}, cinema); err != nil {
		t.Fatalf("expected owner to pass, got %v", err)
	}
}

func TestCheckOwnershipRejectsNonOwner(t *testing.T) {
	cinema := &entity.Cinema{OrganizerID: "org-1"}
	if err := CheckOwnership(Principal{UserID: "org-2"}, cinema); err == nil {
		t.Fatal("expected non-owner to be rejected")
	}
}

func TestCheckOwnershipAdminBypass(t *testing.T) {
	cinema := &entity.Cinema{OrganizerID: "org-1"}
	if err := CheckOwnership(Principal{UserID: "org-2", IsAdmin: true}, cinema); err != nil {
		t.Fatalf("expected admin bypass, got %v", err)
	}
}

func TestCheckApprovedRejectsPending(t *testing.T) {
	cinema := &entity.Cinema{ApprovalStatus: entity.ApprovalPending}
	if err := CheckApproved(cinema); err == nil {
		t.Fatal("expected pending cinema to be rejected")
	}
}

func TestCheckApprovedAllowsApproved(t *testing.T) {
	cinema := &entity.Cinema{ApprovalStatus: entity.ApprovalApproved}
	if err := CheckApproved(cinema); err != nil {
		t.Fatalf("expected approved cinema to pass, got %v", err)
	}
}

func TestCheckAdminRejectsNonAdmin(t *testing.T) {
	if err := CheckAdmin(Principal{UserID: "org-1"}); err == nil {
		t.Fatal("expected non-admin to be rejected")
	}
}

func TestCheckAdminAllowsAdmin(t *testing.T) {
	if err := CheckAdmin(Principal{UserID: "org-1", IsAdmin: true}); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}
