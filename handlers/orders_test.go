package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/velora-labs/velora-backend-go/models"
)

func sessionContext(role string, uid primitive.ObjectID, target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("userID", uid)
	if role != "" {
		c.Set("role", role)
	}
	return c
}

func TestOrderScopePinsCustomerToOwnOrders(t *testing.T) {
	uid := primitive.NewObjectID()
	c := sessionContext("customer", uid, "/api/orders?userId=someone-else")

	filter := orderScope(c, bson.M{"userId": c.QueryParam("userId")})

	if got := filter["userId"]; got != uid.Hex() {
		t.Fatalf("customer filter userId = %v, want caller %s", got, uid.Hex())
	}
}

func TestOrderScopeTreatsMissingRoleAsCustomer(t *testing.T) {
	uid := primitive.NewObjectID()
	c := sessionContext("", uid, "/api/orders")

	filter := orderScope(c, bson.M{})

	if got := filter["userId"]; got != uid.Hex() {
		t.Fatalf("filter userId = %v, want caller %s", got, uid.Hex())
	}
}

func TestOrderScopeLeavesAdminFilterAlone(t *testing.T) {
	uid := primitive.NewObjectID()
	c := sessionContext(models.RoleAdmin, uid, "/api/admin/orders?userId=other-customer")

	filter := orderScope(c, bson.M{"userId": "other-customer"})

	if got := filter["userId"]; got != "other-customer" {
		t.Fatalf("admin filter userId = %v, want other-customer", got)
	}

	open := orderScope(c, bson.M{})
	if _, pinned := open["userId"]; pinned {
		t.Fatal("admin filter without userId should stay unscoped")
	}
}

func TestOrderScopeKeepsIDOnDetailLookups(t *testing.T) {
	uid := primitive.NewObjectID()
	orderID := primitive.NewObjectID()
	c := sessionContext("customer", uid, "/api/orders/"+orderID.Hex())

	filter := orderScope(c, bson.M{"_id": orderID})

	if got := filter["_id"]; got != orderID {
		t.Fatalf("filter _id = %v, want %v", got, orderID)
	}
	if got := filter["userId"]; got != uid.Hex() {
		t.Fatalf("detail lookup must pin userId, got %v", got)
	}
}
