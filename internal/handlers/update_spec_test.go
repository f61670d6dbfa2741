package handlers

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildUpdateSpecPassesOperatorGroupsThrough(t *testing.T) {
	body := map[string]interface{}{
		"$push": map[string]interface{}{"tags": "promo"},
		"$set":  map[string]interface{}{"prix": 15.0},
	}

	update := buildUpdateSpec(body)

	if !reflect.DeepEqual(update["$push"], body["$push"]) {
		t.Fatalf("expected $push group to pass through, got %v", update["$push"])
	}
	if !reflect.DeepEqual(update["$set"], body["$set"]) {
		t.Fatalf("expected $set group to pass through, got %v", update["$set"])
	}
}

func TestBuildUpdateSpecBareFieldsBecomeSet(t *testing.T) {
	body := map[string]interface{}{
		"nom":  "Chemise Rouge",
		"prix": 44.9,
		"_id":  "68b1c0ffee0000000000beef",
	}

	update := buildUpdateSpec(body)

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("expected bare fields to become $set, got %v", update)
	}
	if set["nom"] != "Chemise Rouge" || set["prix"] != 44.9 {
		t.Fatalf("expected fields preserved in $set, got %v", set)
	}
	if _, exists := set["_id"]; exists {
		t.Fatal("expected _id to be stripped from $set")
	}
}

func TestBuildUpdateSpecAlwaysStampsLastModification(t *testing.T) {
	update := buildUpdateSpec(map[string]interface{}{"nom": "x"})

	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok {
		t.Fatalf("expected $currentDate group, got %v", update)
	}
	if currentDate["derniere_modification"] != true {
		t.Fatalf("expected derniere_modification stamp, got %v", currentDate)
	}
}

func TestBuildUpdateSpecMergesCallerCurrentDate(t *testing.T) {
	body := map[string]interface{}{
		"$currentDate": map[string]interface{}{"verifie_le": true},
	}

	update := buildUpdateSpec(body)

	currentDate := update["$currentDate"].(bson.M)
	if currentDate["verifie_le"] != true {
		t.Fatalf("expected caller timestamp group to survive, got %v", currentDate)
	}
	if currentDate["derniere_modification"] != true {
		t.Fatalf("expected stamp merged alongside caller group, got %v", currentDate)
	}
}

func TestBuildUpdateSpecEmptyBodyOnlyStamps(t *testing.T) {
	update := buildUpdateSpec(map[string]interface{}{})

	if _, exists := update["$set"]; exists {
		t.Fatal("expected no empty $set group")
	}
	if len(update) != 1 {
		t.Fatalf("expected only the timestamp group, got %v", update)
	}
}
