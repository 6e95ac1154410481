// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./location.go -destination=../mocks/mock_location_repository.go -package=mocks LocationRepositoryIface
//go:generate mockgen -source=./offer.go -destination=../mocks/mock_offer_repository.go -package=mocks OfferRepositoryIface
//go:generate mockgen -source=./merchant.go -destination=../mocks/mock_merchant_repository.go -package=mocks MerchantRepositoryIface
