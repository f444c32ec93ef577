// Package cart provides the customer's single-vendor shopping cart that feeds checkout.
package cart
