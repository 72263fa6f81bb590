package processor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// adminEventsABI holds the access control, pausing and proxy events every contract emits.
const adminEventsABI = `[
  {"type":"event","name":"RoleGranted","inputs":[
    {"name":"role","type":"bytes32","indexed":true},
    {"name":"account","type":"address","indexed":true},
    {"name":"sender","type":"address","indexed":true}]},
  {"type":"event","name":"RoleRevoked","inputs":[
    {"name":"role","type":"bytes32","indexed":true},
    {"name":"account","type":"address","indexed":true},
    {"name":"sender","type":"address","indexed":true}]},
  {"type":"event","name":"RoleAdminChanged","inputs":[
    {"name":"role","type":"bytes32","indexed":true},
    {"name":"previousAdminRole","type":"bytes32","indexed":true},
    {"name":"newAdminRole","type":"bytes32","indexed":true}]},
  {"type":"event","name":"Paused","inputs":[
    {"name":"account","type":"address","indexed":false}]},
  {"type":"event","name":"Unpaused","inputs":[
    {"name":"account","type":"address","indexed":false}]},
  {"type":"event","name":"Initialized","inputs":[
    {"name":"version","type":"uint64","indexed":false}]},
  {"type":"event","name":"Upgraded","inputs":[
    {"name":"implementation","type":"address","indexed":true}]},
  {"type":"event","name":"OwnershipTransferred","inputs":[
    {"name":"previousOwner","type":"address","indexed":true},
    {"name":"newOwner","type":"address","indexed":true}]},
  {"type":"event","name":"AdminChanged","inputs":[
    {"name":"previousAdmin","type":"address","indexed":false},
    {"name":"newAdmin","type":"address","indexed":false}]},
  {"type":"event","name":"BeaconUpgraded","inputs":[
    {"name":"beacon","type":"address","indexed":true}]}
]`

// GlobalIgnoreEvents are acknowledged without effect by every processor.
var GlobalIgnoreEvents = []string{
	"RoleGranted",
	"RoleRevoked",
	"RoleAdminChanged",
	"Paused",
	"Unpaused",
	"Initialized",
	"Upgraded",
	"OwnershipTransferred",
	"AdminChanged",
	"BeaconUpgraded",
}

// EventsABI parses the contract events and appends the administrative events.
func EventsABI(contractEvents string) (abi.ABI, error) {
	var contract, admin []json.RawMessage
	if err := json.Unmarshal([]byte(contractEvents), &contract); err != nil {
		return abi.ABI{}, fmt.Errorf("invalid contract abi: %w", err)
	}
	if err := json.Unmarshal([]byte(adminEventsABI), &admin); err != nil {
		return abi.ABI{}, fmt.Errorf("invalid admin abi: %w", err)
	}

	merged, err := json.Marshal(append(contract, admin...))
	if err != nil {
		return abi.ABI{}, err
	}

	return abi.JSON(strings.NewReader(string(merged)))
}

// MustEventsABI is EventsABI for package level ABI definitions.
func MustEventsABI(contractEvents string) abi.ABI {
	parsed, err := EventsABI(contractEvents)
	if err != nil {
		panic(err)
	}
	return parsed
}

// MustABI parses a plain ABI definition.
func MustABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return parsed
}
