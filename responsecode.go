package ews

// ResponseCode identifies an EWS protocol-level error. The values form a
// closed enumeration defined in MS-OXWSCDATA; a string that matches none of
// them is rejected by ParseResponseCode.
type ResponseCode string

// String implements fmt.Stringer.
func (c ResponseCode) String() string {
	return string(c)
}

// ParseResponseCode maps a wire string to a ResponseCode. An unrecognized
// string yields an UnknownResponseCodeError; there is no default.
func ParseResponseCode(s string) (ResponseCode, error) {
	c := ResponseCode(s)
	if !responseCodeSet[c] {
		return "", &UnknownResponseCodeError{Value: s}
	}
	return c, nil
}

const (
	NoError ResponseCode = "NoError"

	ErrorAccessDenied                                   ResponseCode = "ErrorAccessDenied"
	ErrorAccountDisabled                                ResponseCode = "ErrorAccountDisabled"
	ErrorAddDelegatesFailed                             ResponseCode = "ErrorAddDelegatesFailed"
	ErrorAddressSpaceNotFound                           ResponseCode = "ErrorAddressSpaceNotFound"
	ErrorADOperation                                    ResponseCode = "ErrorADOperation"
	ErrorADSessionFilter                                ResponseCode = "ErrorADSessionFilter"
	ErrorADUnavailable                                  ResponseCode = "ErrorADUnavailable"
	ErrorAffectedTaskOccurrencesRequired                ResponseCode = "ErrorAffectedTaskOccurrencesRequired"
	ErrorAttachmentNestLevelLimitExceeded               ResponseCode = "ErrorAttachmentNestLevelLimitExceeded"
	ErrorAttachmentSizeLimitExceeded                    ResponseCode = "ErrorAttachmentSizeLimitExceeded"
	ErrorAutoDiscoverFailed                             ResponseCode = "ErrorAutoDiscoverFailed"
	ErrorAvailabilityConfigNotFound                     ResponseCode = "ErrorAvailabilityConfigNotFound"
	ErrorBatchProcessingStopped                         ResponseCode = "ErrorBatchProcessingStopped"
	ErrorCalendarCannotMoveOrCopyOccurrence             ResponseCode = "ErrorCalendarCannotMoveOrCopyOccurrence"
	ErrorCalendarCannotUpdateDeletedItem                ResponseCode = "ErrorCalendarCannotUpdateDeletedItem"
	ErrorCalendarCannotUseIdForOccurrenceId             ResponseCode = "ErrorCalendarCannotUseIdForOccurrenceId"
	ErrorCalendarCannotUseIdForRecurringMasterId        ResponseCode = "ErrorCalendarCannotUseIdForRecurringMasterId"
	ErrorCalendarDurationIsTooLong                      ResponseCode = "ErrorCalendarDurationIsTooLong"
	ErrorCalendarEndDateIsEarlierThanStartDate          ResponseCode = "ErrorCalendarEndDateIsEarlierThanStartDate"
	ErrorCalendarFolderIsInvalidForCalendarView         ResponseCode = "ErrorCalendarFolderIsInvalidForCalendarView"
	ErrorCalendarInvalidAttributeValue                  ResponseCode = "ErrorCalendarInvalidAttributeValue"
	ErrorCalendarInvalidDayForTimeChangePattern         ResponseCode = "ErrorCalendarInvalidDayForTimeChangePattern"
	ErrorCalendarInvalidDayForWeeklyRecurrence          ResponseCode = "ErrorCalendarInvalidDayForWeeklyRecurrence"
	ErrorCalendarInvalidPropertyState                   ResponseCode = "ErrorCalendarInvalidPropertyState"
	ErrorCalendarInvalidPropertyValue                   ResponseCode = "ErrorCalendarInvalidPropertyValue"
	ErrorCalendarInvalidRecurrence                      ResponseCode = "ErrorCalendarInvalidRecurrence"
	ErrorCalendarInvalidTimeZone                        ResponseCode = "ErrorCalendarInvalidTimeZone"
	ErrorCalendarIsDelegatedForAccept                   ResponseCode = "ErrorCalendarIsDelegatedForAccept"
	ErrorCalendarIsDelegatedForDecline                  ResponseCode = "ErrorCalendarIsDelegatedForDecline"
	ErrorCalendarIsDelegatedForRemove                   ResponseCode = "ErrorCalendarIsDelegatedForRemove"
	ErrorCalendarIsDelegatedForTentative                ResponseCode = "ErrorCalendarIsDelegatedForTentative"
	ErrorCalendarIsNotOrganizer                         ResponseCode = "ErrorCalendarIsNotOrganizer"
	ErrorCalendarIsOrganizerForAccept                   ResponseCode = "ErrorCalendarIsOrganizerForAccept"
	ErrorCalendarIsOrganizerForDecline                  ResponseCode = "ErrorCalendarIsOrganizerForDecline"
	ErrorCalendarIsOrganizerForRemove                   ResponseCode = "ErrorCalendarIsOrganizerForRemove"
	ErrorCalendarIsOrganizerForTentative                ResponseCode = "ErrorCalendarIsOrganizerForTentative"
	ErrorCalendarMeetingRequestIsOutOfDate              ResponseCode = "ErrorCalendarMeetingRequestIsOutOfDate"
	ErrorCalendarOccurrenceIndexIsOutOfRecurrenceRange  ResponseCode = "ErrorCalendarOccurrenceIndexIsOutOfRecurrenceRange"
	ErrorCalendarOccurrenceIsDeletedFromRecurrence      ResponseCode = "ErrorCalendarOccurrenceIsDeletedFromRecurrence"
	ErrorCalendarOutOfRange                             ResponseCode = "ErrorCalendarOutOfRange"
	ErrorCalendarViewRangeTooBig                        ResponseCode = "ErrorCalendarViewRangeTooBig"
	ErrorCannotCreateCalendarItemInNonCalendarFolder    ResponseCode = "ErrorCannotCreateCalendarItemInNonCalendarFolder"
	ErrorCannotCreateContactInNonContactFolder          ResponseCode = "ErrorCannotCreateContactInNonContactFolder"
	ErrorCannotCreateTaskInNonTaskFolder                ResponseCode = "ErrorCannotCreateTaskInNonTaskFolder"
	ErrorCannotDeleteObject                             ResponseCode = "ErrorCannotDeleteObject"
	ErrorCannotDeleteTaskOccurrence                     ResponseCode = "ErrorCannotDeleteTaskOccurrence"
	ErrorCannotOpenFileAttachment                       ResponseCode = "ErrorCannotOpenFileAttachment"
	ErrorCannotSetCalendarPermissionOnNonCalendarFolder ResponseCode = "ErrorCannotSetCalendarPermissionOnNonCalendarFolder"
	ErrorCannotSetNonCalendarPermissionOnCalendarFolder ResponseCode = "ErrorCannotSetNonCalendarPermissionOnCalendarFolder"
	ErrorCannotSetPermissionUnknownEntries              ResponseCode = "ErrorCannotSetPermissionUnknownEntries"
	ErrorCannotUseFolderIdForItemId                     ResponseCode = "ErrorCannotUseFolderIdForItemId"
	ErrorCannotUseItemIdForFolderId                     ResponseCode = "ErrorCannotUseItemIdForFolderId"
	ErrorChangeKeyRequired                              ResponseCode = "ErrorChangeKeyRequired"
	ErrorChangeKeyRequiredForWriteOperations            ResponseCode = "ErrorChangeKeyRequiredForWriteOperations"
	ErrorConnectionFailed                               ResponseCode = "ErrorConnectionFailed"
	ErrorContainsFilterWrongType                        ResponseCode = "ErrorContainsFilterWrongType"
	ErrorContentConversionFailed                        ResponseCode = "ErrorContentConversionFailed"
	ErrorCorruptData                                    ResponseCode = "ErrorCorruptData"
	ErrorCreateItemAccessDenied                         ResponseCode = "ErrorCreateItemAccessDenied"
	ErrorCreateManagedFolderPartialCompletion           ResponseCode = "ErrorCreateManagedFolderPartialCompletion"
	ErrorCreateSubfolderAccessDenied                    ResponseCode = "ErrorCreateSubfolderAccessDenied"
	ErrorCrossMailboxMoveCopy                           ResponseCode = "ErrorCrossMailboxMoveCopy"
	ErrorDataSizeLimitExceeded                          ResponseCode = "ErrorDataSizeLimitExceeded"
	ErrorDataSourceOperation                            ResponseCode = "ErrorDataSourceOperation"
	ErrorDelegateAlreadyExists                          ResponseCode = "ErrorDelegateAlreadyExists"
	ErrorDelegateCannotAddOwner                         ResponseCode = "ErrorDelegateCannotAddOwner"
	ErrorDelegateMissingConfiguration                   ResponseCode = "ErrorDelegateMissingConfiguration"
	ErrorDelegateNoUser                                 ResponseCode = "ErrorDelegateNoUser"
	ErrorDelegateValidationFailed                       ResponseCode = "ErrorDelegateValidationFailed"
	ErrorDeleteDistinguishedFolder                      ResponseCode = "ErrorDeleteDistinguishedFolder"
	ErrorDeleteItemsFailed                              ResponseCode = "ErrorDeleteItemsFailed"
	ErrorDistinguishedUserNotSupported                  ResponseCode = "ErrorDistinguishedUserNotSupported"
	ErrorDuplicateInputFolderNames                      ResponseCode = "ErrorDuplicateInputFolderNames"
	ErrorDuplicateUserIdsSpecified                      ResponseCode = "ErrorDuplicateUserIdsSpecified"
	ErrorEmailAddressMismatch                           ResponseCode = "ErrorEmailAddressMismatch"
	ErrorEventNotFound                                  ResponseCode = "ErrorEventNotFound"
	ErrorExceededConnectionCount                        ResponseCode = "ErrorExceededConnectionCount"
	ErrorExceededFindCountLimit                         ResponseCode = "ErrorExceededFindCountLimit"
	ErrorExceededSubscriptionCount                      ResponseCode = "ErrorExceededSubscriptionCount"
	ErrorExpiredSubscription                            ResponseCode = "ErrorExpiredSubscription"
	ErrorFolderCorrupt                                  ResponseCode = "ErrorFolderCorrupt"
	ErrorFolderExists                                   ResponseCode = "ErrorFolderExists"
	ErrorFolderNotFound                                 ResponseCode = "ErrorFolderNotFound"
	ErrorFolderPropertRequestFailed                     ResponseCode = "ErrorFolderPropertRequestFailed"
	ErrorFolderSave                                     ResponseCode = "ErrorFolderSave"
	ErrorFolderSaveFailed                               ResponseCode = "ErrorFolderSaveFailed"
	ErrorFolderSavePropertyError                        ResponseCode = "ErrorFolderSavePropertyError"
	ErrorFreeBusyGenerationFailed                       ResponseCode = "ErrorFreeBusyGenerationFailed"
	ErrorGetServerSecurityDescriptorFailed              ResponseCode = "ErrorGetServerSecurityDescriptorFailed"
	ErrorImpersonateUserDenied                          ResponseCode = "ErrorImpersonateUserDenied"
	ErrorImpersonationDenied                            ResponseCode = "ErrorImpersonationDenied"
	ErrorImpersonationFailed                            ResponseCode = "ErrorImpersonationFailed"
	ErrorIncorrectUpdatePropertyCount                   ResponseCode = "ErrorIncorrectUpdatePropertyCount"
	ErrorIndividualMailboxLimitReached                  ResponseCode = "ErrorIndividualMailboxLimitReached"
	ErrorInsufficientResources                          ResponseCode = "ErrorInsufficientResources"
	ErrorInternalServerError                            ResponseCode = "ErrorInternalServerError"
	ErrorInternalServerTransientError                   ResponseCode = "ErrorInternalServerTransientError"
	ErrorInvalidAccessLevel                             ResponseCode = "ErrorInvalidAccessLevel"
	ErrorInvalidAttachmentId                            ResponseCode = "ErrorInvalidAttachmentId"
	ErrorInvalidAttachmentSubfilter                     ResponseCode = "ErrorInvalidAttachmentSubfilter"
	ErrorInvalidAttachmentSubfilterTextFilter           ResponseCode = "ErrorInvalidAttachmentSubfilterTextFilter"
	ErrorInvalidAuthorizationContext                    ResponseCode = "ErrorInvalidAuthorizationContext"
	ErrorInvalidChangeKey                               ResponseCode = "ErrorInvalidChangeKey"
	ErrorInvalidClientSecurityContext                   ResponseCode = "ErrorInvalidClientSecurityContext"
	ErrorInvalidCompleteDate                            ResponseCode = "ErrorInvalidCompleteDate"
	ErrorInvalidCrossForestCredentials                  ResponseCode = "ErrorInvalidCrossForestCredentials"
	ErrorInvalidDelegatePermission                      ResponseCode = "ErrorInvalidDelegatePermission"
	ErrorInvalidDelegateUserId                          ResponseCode = "ErrorInvalidDelegateUserId"
	ErrorInvalidExchangeImpersonationHeaderData         ResponseCode = "ErrorInvalidExchangeImpersonationHeaderData"
	ErrorInvalidExcludesRestriction                     ResponseCode = "ErrorInvalidExcludesRestriction"
	ErrorInvalidExpressionTypeForSubFilter              ResponseCode = "ErrorInvalidExpressionTypeForSubFilter"
	ErrorInvalidExtendedProperty                        ResponseCode = "ErrorInvalidExtendedProperty"
	ErrorInvalidExtendedPropertyValue                   ResponseCode = "ErrorInvalidExtendedPropertyValue"
	ErrorInvalidFolderId                                ResponseCode = "ErrorInvalidFolderId"
	ErrorInvalidFolderTypeForOperation                  ResponseCode = "ErrorInvalidFolderTypeForOperation"
	ErrorInvalidFractionalPagingParameters              ResponseCode = "ErrorInvalidFractionalPagingParameters"
	ErrorInvalidFreeBusyViewType                        ResponseCode = "ErrorInvalidFreeBusyViewType"
	ErrorInvalidId                                      ResponseCode = "ErrorInvalidId"
	ErrorInvalidIdEmpty                                 ResponseCode = "ErrorInvalidIdEmpty"
	ErrorInvalidIdMalformed                             ResponseCode = "ErrorInvalidIdMalformed"
	ErrorInvalidIdMalformedEwsLegacyIdFormat            ResponseCode = "ErrorInvalidIdMalformedEwsLegacyIdFormat"
	ErrorInvalidIdMonikerTooLong                        ResponseCode = "ErrorInvalidIdMonikerTooLong"
	ErrorInvalidIdNotAnItemAttachmentId                 ResponseCode = "ErrorInvalidIdNotAnItemAttachmentId"
	ErrorInvalidIdReturnedByResolveNames                ResponseCode = "ErrorInvalidIdReturnedByResolveNames"
	ErrorInvalidIdStoreObjectIdTooLong                  ResponseCode = "ErrorInvalidIdStoreObjectIdTooLong"
	ErrorInvalidIdTooManyAttachmentLevels               ResponseCode = "ErrorInvalidIdTooManyAttachmentLevels"
	ErrorInvalidIdXml                                   ResponseCode = "ErrorInvalidIdXml"
	ErrorInvalidIndexedPagingParameters                 ResponseCode = "ErrorInvalidIndexedPagingParameters"
	ErrorInvalidInternetHeaderChildNodes                ResponseCode = "ErrorInvalidInternetHeaderChildNodes"
	ErrorInvalidItemForOperationAcceptItem              ResponseCode = "ErrorInvalidItemForOperationAcceptItem"
	ErrorInvalidItemForOperationCancelItem              ResponseCode = "ErrorInvalidItemForOperationCancelItem"
	ErrorInvalidItemForOperationCreateItem              ResponseCode = "ErrorInvalidItemForOperationCreateItem"
	ErrorInvalidItemForOperationCreateItemAttachment    ResponseCode = "ErrorInvalidItemForOperationCreateItemAttachment"
	ErrorInvalidItemForOperationDeclineItem             ResponseCode = "ErrorInvalidItemForOperationDeclineItem"
	ErrorInvalidItemForOperationExpandDL                ResponseCode = "ErrorInvalidItemForOperationExpandDL"
	ErrorInvalidItemForOperationRemoveItem              ResponseCode = "ErrorInvalidItemForOperationRemoveItem"
	ErrorInvalidItemForOperationSendItem                ResponseCode = "ErrorInvalidItemForOperationSendItem"
	ErrorInvalidItemForOperationTentative               ResponseCode = "ErrorInvalidItemForOperationTentative"
	ErrorInvalidManagedFolderProperty                   ResponseCode = "ErrorInvalidManagedFolderProperty"
	ErrorInvalidManagedFolderQuota                      ResponseCode = "ErrorInvalidManagedFolderQuota"
	ErrorInvalidManagedFolderSize                       ResponseCode = "ErrorInvalidManagedFolderSize"
	ErrorInvalidMergedFreeBusyInterval                  ResponseCode = "ErrorInvalidMergedFreeBusyInterval"
	ErrorInvalidNameForNameResolution                   ResponseCode = "ErrorInvalidNameForNameResolution"
	ErrorInvalidNetworkServiceContext                   ResponseCode = "ErrorInvalidNetworkServiceContext"
	ErrorInvalidOofParameter                            ResponseCode = "ErrorInvalidOofParameter"
	ErrorInvalidOperation                               ResponseCode = "ErrorInvalidOperation"
	ErrorInvalidPagingMaxRows                           ResponseCode = "ErrorInvalidPagingMaxRows"
	ErrorInvalidParentFolder                            ResponseCode = "ErrorInvalidParentFolder"
	ErrorInvalidPercentCompleteValue                    ResponseCode = "ErrorInvalidPercentCompleteValue"
	ErrorInvalidPropertyAppend                          ResponseCode = "ErrorInvalidPropertyAppend"
	ErrorInvalidPropertyDelete                          ResponseCode = "ErrorInvalidPropertyDelete"
	ErrorInvalidPropertyForExists                       ResponseCode = "ErrorInvalidPropertyForExists"
	ErrorInvalidPropertyForOperation                    ResponseCode = "ErrorInvalidPropertyForOperation"
	ErrorInvalidPropertyRequest                         ResponseCode = "ErrorInvalidPropertyRequest"
	ErrorInvalidPropertySet                             ResponseCode = "ErrorInvalidPropertySet"
	ErrorInvalidPropertyUpdateSentMessage               ResponseCode = "ErrorInvalidPropertyUpdateSentMessage"
	ErrorInvalidProxySecurityContext                    ResponseCode = "ErrorInvalidProxySecurityContext"
	ErrorInvalidPullSubscriptionId                      ResponseCode = "ErrorInvalidPullSubscriptionId"
	ErrorInvalidPushSubscriptionUrl                     ResponseCode = "ErrorInvalidPushSubscriptionUrl"
	ErrorInvalidRecipients                              ResponseCode = "ErrorInvalidRecipients"
	ErrorInvalidRecipientSubfilter                      ResponseCode = "ErrorInvalidRecipientSubfilter"
	ErrorInvalidRecipientSubfilterComparison            ResponseCode = "ErrorInvalidRecipientSubfilterComparison"
	ErrorInvalidRecipientSubfilterOrder                 ResponseCode = "ErrorInvalidRecipientSubfilterOrder"
	ErrorInvalidRecipientSubfilterTextFilter            ResponseCode = "ErrorInvalidRecipientSubfilterTextFilter"
	ErrorInvalidReferenceItem                           ResponseCode = "ErrorInvalidReferenceItem"
	ErrorInvalidRequest                                 ResponseCode = "ErrorInvalidRequest"
	ErrorInvalidRestriction                             ResponseCode = "ErrorInvalidRestriction"
	ErrorInvalidRoutingType                             ResponseCode = "ErrorInvalidRoutingType"
	ErrorInvalidScheduledOofDuration                    ResponseCode = "ErrorInvalidScheduledOofDuration"
	ErrorInvalidSecurityDescriptor                      ResponseCode = "ErrorInvalidSecurityDescriptor"
	ErrorInvalidSendItemSaveSettings                    ResponseCode = "ErrorInvalidSendItemSaveSettings"
	ErrorInvalidSerializedAccessToken                   ResponseCode = "ErrorInvalidSerializedAccessToken"
	ErrorInvalidSid                                     ResponseCode = "ErrorInvalidSid"
	ErrorInvalidSmtpAddress                             ResponseCode = "ErrorInvalidSmtpAddress"
	ErrorInvalidSubfilterType                           ResponseCode = "ErrorInvalidSubfilterType"
	ErrorInvalidSubfilterTypeNotAttendeeType            ResponseCode = "ErrorInvalidSubfilterTypeNotAttendeeType"
	ErrorInvalidSubfilterTypeNotRecipientType           ResponseCode = "ErrorInvalidSubfilterTypeNotRecipientType"
	ErrorInvalidSubscription                            ResponseCode = "ErrorInvalidSubscription"
	ErrorInvalidSyncStateData                           ResponseCode = "ErrorInvalidSyncStateData"
	ErrorInvalidTimeInterval                            ResponseCode = "ErrorInvalidTimeInterval"
	ErrorInvalidUserOofSettings                         ResponseCode = "ErrorInvalidUserOofSettings"
	ErrorInvalidUserPrincipalName                       ResponseCode = "ErrorInvalidUserPrincipalName"
	ErrorInvalidUserSid                                 ResponseCode = "ErrorInvalidUserSid"
	ErrorInvalidUserSidMissingUPN                       ResponseCode = "ErrorInvalidUserSidMissingUPN"
	ErrorInvalidValueForProperty                        ResponseCode = "ErrorInvalidValueForProperty"
	ErrorInvalidWatermark                               ResponseCode = "ErrorInvalidWatermark"
	ErrorIrresolvableConflict                           ResponseCode = "ErrorIrresolvableConflict"
	ErrorItemCorrupt                                    ResponseCode = "ErrorItemCorrupt"
	ErrorItemNotFound                                   ResponseCode = "ErrorItemNotFound"
	ErrorItemPropertyRequestFailed                      ResponseCode = "ErrorItemPropertyRequestFailed"
	ErrorItemSave                                       ResponseCode = "ErrorItemSave"
	ErrorItemSavePropertyError                          ResponseCode = "ErrorItemSavePropertyError"
	ErrorLegacyMailboxFreeBusyViewTypeNotMerged         ResponseCode = "ErrorLegacyMailboxFreeBusyViewTypeNotMerged"
	ErrorLocalServerObjectNotFound                      ResponseCode = "ErrorLocalServerObjectNotFound"
	ErrorLogonAsNetworkServiceFailed                    ResponseCode = "ErrorLogonAsNetworkServiceFailed"
	ErrorMailboxConfiguration                           ResponseCode = "ErrorMailboxConfiguration"
	ErrorMailboxDataArrayEmpty                          ResponseCode = "ErrorMailboxDataArrayEmpty"
	ErrorMailboxDataArrayTooBig                         ResponseCode = "ErrorMailboxDataArrayTooBig"
	ErrorMailboxLogonFailed                             ResponseCode = "ErrorMailboxLogonFailed"
	ErrorMailboxMoveInProgress                          ResponseCode = "ErrorMailboxMoveInProgress"
	ErrorMailboxStoreUnavailable                        ResponseCode = "ErrorMailboxStoreUnavailable"
	ErrorMailRecipientNotFound                          ResponseCode = "ErrorMailRecipientNotFound"
	ErrorManagedFolderAlreadyExists                     ResponseCode = "ErrorManagedFolderAlreadyExists"
	ErrorManagedFolderNotFound                          ResponseCode = "ErrorManagedFolderNotFound"
	ErrorManagedFoldersRootFailure                      ResponseCode = "ErrorManagedFoldersRootFailure"
	ErrorMeetingSuggestionGenerationFailed              ResponseCode = "ErrorMeetingSuggestionGenerationFailed"
	ErrorMessageDispositionRequired                     ResponseCode = "ErrorMessageDispositionRequired"
	ErrorMessageSizeExceeded                            ResponseCode = "ErrorMessageSizeExceeded"
	ErrorMimeContentConversionFailed                    ResponseCode = "ErrorMimeContentConversionFailed"
	ErrorMimeContentInvalid                             ResponseCode = "ErrorMimeContentInvalid"
	ErrorMimeContentInvalidBase64String                 ResponseCode = "ErrorMimeContentInvalidBase64String"
	ErrorMissingArgument                                ResponseCode = "ErrorMissingArgument"
	ErrorMissingEmailAddress                            ResponseCode = "ErrorMissingEmailAddress"
	ErrorMissingEmailAddressForManagedFolder            ResponseCode = "ErrorMissingEmailAddressForManagedFolder"
	ErrorMissingInformationEmailAddress                 ResponseCode = "ErrorMissingInformationEmailAddress"
	ErrorMissingInformationReferenceItemId              ResponseCode = "ErrorMissingInformationReferenceItemId"
	ErrorMissingItemForCreateItemAttachment             ResponseCode = "ErrorMissingItemForCreateItemAttachment"
	ErrorMissingManagedFolderId                         ResponseCode = "ErrorMissingManagedFolderId"
	ErrorMissingRecipients                              ResponseCode = "ErrorMissingRecipients"
	ErrorMoveCopyFailed                                 ResponseCode = "ErrorMoveCopyFailed"
	ErrorMoveDistinguishedFolder                        ResponseCode = "ErrorMoveDistinguishedFolder"
	ErrorNameResolutionMultipleResults                  ResponseCode = "ErrorNameResolutionMultipleResults"
	ErrorNameResolutionNoMailbox                        ResponseCode = "ErrorNameResolutionNoMailbox"
	ErrorNameResolutionNoResults                        ResponseCode = "ErrorNameResolutionNoResults"
	ErrorNoCalendar                                     ResponseCode = "ErrorNoCalendar"
	ErrorNoDestinationCabinetPermissions                ResponseCode = "ErrorNoDestinationCabinetPermissions"
	ErrorNoFolderClassOverride                          ResponseCode = "ErrorNoFolderClassOverride"
	ErrorNoFreeBusyAccess                               ResponseCode = "ErrorNoFreeBusyAccess"
	ErrorNonExistentMailbox                             ResponseCode = "ErrorNonExistentMailbox"
	ErrorNonPrimarySmtpAddress                          ResponseCode = "ErrorNonPrimarySmtpAddress"
	ErrorNoPropertyTagForCustomProperties               ResponseCode = "ErrorNoPropertyTagForCustomProperties"
	ErrorNotEnoughMemory                                ResponseCode = "ErrorNotEnoughMemory"
	ErrorObjectTypeChanged                              ResponseCode = "ErrorObjectTypeChanged"
	ErrorOccurrenceCrossingBoundary                     ResponseCode = "ErrorOccurrenceCrossingBoundary"
	ErrorOccurrenceTimeSpanTooBig                       ResponseCode = "ErrorOccurrenceTimeSpanTooBig"
	ErrorParentFolderIdRequired                         ResponseCode = "ErrorParentFolderIdRequired"
	ErrorParentFolderNotFound                           ResponseCode = "ErrorParentFolderNotFound"
	ErrorPasswordChangeRequired                         ResponseCode = "ErrorPasswordChangeRequired"
	ErrorPasswordExpired                                ResponseCode = "ErrorPasswordExpired"
	ErrorPropertyUpdate                                 ResponseCode = "ErrorPropertyUpdate"
	ErrorPropertyValidationFailure                      ResponseCode = "ErrorPropertyValidationFailure"
	ErrorProxyRequestNotAllowed                         ResponseCode = "ErrorProxyRequestNotAllowed"
	ErrorPublicFolderRequestProcessingFailed            ResponseCode = "ErrorPublicFolderRequestProcessingFailed"
	ErrorPublicFolderServerNotFound                     ResponseCode = "ErrorPublicFolderServerNotFound"
	ErrorQueryFilterTooLong                             ResponseCode = "ErrorQueryFilterTooLong"
	ErrorQuotaExceeded                                  ResponseCode = "ErrorQuotaExceeded"
	ErrorReadEventsFailed                               ResponseCode = "ErrorReadEventsFailed"
	ErrorReadReceiptNotPending                          ResponseCode = "ErrorReadReceiptNotPending"
	ErrorRecurrenceEndDateTooBig                        ResponseCode = "ErrorRecurrenceEndDateTooBig"
	ErrorRecurrenceHasNoOccurrence                      ResponseCode = "ErrorRecurrenceHasNoOccurrence"
	ErrorRequestAborted                                 ResponseCode = "ErrorRequestAborted"
	ErrorRequestStreamTooBig                            ResponseCode = "ErrorRequestStreamTooBig"
	ErrorRequiredPropertyMissing                        ResponseCode = "ErrorRequiredPropertyMissing"
	ErrorResponseSchemaValidation                       ResponseCode = "ErrorResponseSchemaValidation"
	ErrorRestrictionTooComplex                          ResponseCode = "ErrorRestrictionTooComplex"
	ErrorRestrictionTooLong                             ResponseCode = "ErrorRestrictionTooLong"
	ErrorResultSetTooBig                                ResponseCode = "ErrorResultSetTooBig"
	ErrorSavedItemFolderNotFound                        ResponseCode = "ErrorSavedItemFolderNotFound"
	ErrorSchemaValidation                               ResponseCode = "ErrorSchemaValidation"
	ErrorSearchFolderNotInitialized                     ResponseCode = "ErrorSearchFolderNotInitialized"
	ErrorSendAsDenied                                   ResponseCode = "ErrorSendAsDenied"
	ErrorSendMeetingCancellationsRequired               ResponseCode = "ErrorSendMeetingCancellationsRequired"
	ErrorSendMeetingInvitationsOrCancellationsRequired  ResponseCode = "ErrorSendMeetingInvitationsOrCancellationsRequired"
	ErrorSendMeetingInvitationsRequired                 ResponseCode = "ErrorSendMeetingInvitationsRequired"
	ErrorSentMeetingRequestUpdate                       ResponseCode = "ErrorSentMeetingRequestUpdate"
	ErrorSentTaskRequestUpdate                          ResponseCode = "ErrorSentTaskRequestUpdate"
	ErrorServerBusy                                     ResponseCode = "ErrorServerBusy"
	ErrorServiceDiscoveryFailed                         ResponseCode = "ErrorServiceDiscoveryFailed"
	ErrorStaleObject                                    ResponseCode = "ErrorStaleObject"
	ErrorSubscriptionAccessDenied                       ResponseCode = "ErrorSubscriptionAccessDenied"
	ErrorSubscriptionDelegateAccessNotSupported         ResponseCode = "ErrorSubscriptionDelegateAccessNotSupported"
	ErrorSubscriptionNotFound                           ResponseCode = "ErrorSubscriptionNotFound"
	ErrorSyncFolderNotFound                             ResponseCode = "ErrorSyncFolderNotFound"
	ErrorTimeIntervalTooBig                             ResponseCode = "ErrorTimeIntervalTooBig"
	ErrorTimeoutExpired                                 ResponseCode = "ErrorTimeoutExpired"
	ErrorToFolderNotFound                               ResponseCode = "ErrorToFolderNotFound"
	ErrorTokenSerializationDenied                       ResponseCode = "ErrorTokenSerializationDenied"
	ErrorUnableToGetUserOofSettings                     ResponseCode = "ErrorUnableToGetUserOofSettings"
	ErrorUnsupportedCulture                             ResponseCode = "ErrorUnsupportedCulture"
	ErrorUnsupportedMapiPropertyType                    ResponseCode = "ErrorUnsupportedMapiPropertyType"
	ErrorUnsupportedMimeConversion                      ResponseCode = "ErrorUnsupportedMimeConversion"
	ErrorUnsupportedPathForQuery                        ResponseCode = "ErrorUnsupportedPathForQuery"
	ErrorUnsupportedPathForSortGroup                    ResponseCode = "ErrorUnsupportedPathForSortGroup"
	ErrorUnsupportedPropertyDefinition                  ResponseCode = "ErrorUnsupportedPropertyDefinition"
	ErrorUnsupportedQueryFilter                         ResponseCode = "ErrorUnsupportedQueryFilter"
	ErrorUnsupportedRecurrence                          ResponseCode = "ErrorUnsupportedRecurrence"
	ErrorUnsupportedSubFilter                           ResponseCode = "ErrorUnsupportedSubFilter"
	ErrorUnsupportedTypeForConversion                   ResponseCode = "ErrorUnsupportedTypeForConversion"
	ErrorUpdatePropertyMismatch                         ResponseCode = "ErrorUpdatePropertyMismatch"
	ErrorVirusDetected                                  ResponseCode = "ErrorVirusDetected"
	ErrorVirusMessageDeleted                            ResponseCode = "ErrorVirusMessageDeleted"
	ErrorVoiceMailNotImplemented                        ResponseCode = "ErrorVoiceMailNotImplemented"
	ErrorWebRequestInInvalidState                       ResponseCode = "ErrorWebRequestInInvalidState"
	ErrorWin32InteropError                              ResponseCode = "ErrorWin32InteropError"
	ErrorWorkingHoursSaveFailed                         ResponseCode = "ErrorWorkingHoursSaveFailed"
	ErrorWorkingHoursXmlMalformed                       ResponseCode = "ErrorWorkingHoursXmlMalformed"
)

var responseCodes = []ResponseCode{
	NoError,
	ErrorAccessDenied,
	ErrorAccountDisabled,
	ErrorAddDelegatesFailed,
	ErrorAddressSpaceNotFound,
	ErrorADOperation,
	ErrorADSessionFilter,
	ErrorADUnavailable,
	ErrorAffectedTaskOccurrencesRequired,
	ErrorAttachmentNestLevelLimitExceeded,
	ErrorAttachmentSizeLimitExceeded,
	ErrorAutoDiscoverFailed,
	ErrorAvailabilityConfigNotFound,
	ErrorBatchProcessingStopped,
	ErrorCalendarCannotMoveOrCopyOccurrence,
	ErrorCalendarCannotUpdateDeletedItem,
	ErrorCalendarCannotUseIdForOccurrenceId,
	ErrorCalendarCannotUseIdForRecurringMasterId,
	ErrorCalendarDurationIsTooLong,
	ErrorCalendarEndDateIsEarlierThanStartDate,
	ErrorCalendarFolderIsInvalidForCalendarView,
	ErrorCalendarInvalidAttributeValue,
	ErrorCalendarInvalidDayForTimeChangePattern,
	ErrorCalendarInvalidDayForWeeklyRecurrence,
	ErrorCalendarInvalidPropertyState,
	ErrorCalendarInvalidPropertyValue,
	ErrorCalendarInvalidRecurrence,
	ErrorCalendarInvalidTimeZone,
	ErrorCalendarIsDelegatedForAccept,
	ErrorCalendarIsDelegatedForDecline,
	ErrorCalendarIsDelegatedForRemove,
	ErrorCalendarIsDelegatedForTentative,
	ErrorCalendarIsNotOrganizer,
	ErrorCalendarIsOrganizerForAccept,
	ErrorCalendarIsOrganizerForDecline,
	ErrorCalendarIsOrganizerForRemove,
	ErrorCalendarIsOrganizerForTentative,
	ErrorCalendarMeetingRequestIsOutOfDate,
	ErrorCalendarOccurrenceIndexIsOutOfRecurrenceRange,
	ErrorCalendarOccurrenceIsDeletedFromRecurrence,
	ErrorCalendarOutOfRange,
	ErrorCalendarViewRangeTooBig,
	ErrorCannotCreateCalendarItemInNonCalendarFolder,
	ErrorCannotCreateContactInNonContactFolder,
	ErrorCannotCreateTaskInNonTaskFolder,
	ErrorCannotDeleteObject,
	ErrorCannotDeleteTaskOccurrence,
	ErrorCannotOpenFileAttachment,
	ErrorCannotSetCalendarPermissionOnNonCalendarFolder,
	ErrorCannotSetNonCalendarPermissionOnCalendarFolder,
	ErrorCannotSetPermissionUnknownEntries,
	ErrorCannotUseFolderIdForItemId,
	ErrorCannotUseItemIdForFolderId,
	ErrorChangeKeyRequired,
	ErrorChangeKeyRequiredForWriteOperations,
	ErrorConnectionFailed,
	ErrorContainsFilterWrongType,
	ErrorContentConversionFailed,
	ErrorCorruptData,
	ErrorCreateItemAccessDenied,
	ErrorCreateManagedFolderPartialCompletion,
	ErrorCreateSubfolderAccessDenied,
	ErrorCrossMailboxMoveCopy,
	ErrorDataSizeLimitExceeded,
	ErrorDataSourceOperation,
	ErrorDelegateAlreadyExists,
	ErrorDelegateCannotAddOwner,
	ErrorDelegateMissingConfiguration,
	ErrorDelegateNoUser,
	ErrorDelegateValidationFailed,
	ErrorDeleteDistinguishedFolder,
	ErrorDeleteItemsFailed,
	ErrorDistinguishedUserNotSupported,
	ErrorDuplicateInputFolderNames,
	ErrorDuplicateUserIdsSpecified,
	ErrorEmailAddressMismatch,
	ErrorEventNotFound,
	ErrorExceededConnectionCount,
	ErrorExceededFindCountLimit,
	ErrorExceededSubscriptionCount,
	ErrorExpiredSubscription,
	ErrorFolderCorrupt,
	ErrorFolderExists,
	ErrorFolderNotFound,
	ErrorFolderPropertRequestFailed,
	ErrorFolderSave,
	ErrorFolderSaveFailed,
	ErrorFolderSavePropertyError,
	ErrorFreeBusyGenerationFailed,
	ErrorGetServerSecurityDescriptorFailed,
	ErrorImpersonateUserDenied,
	ErrorImpersonationDenied,
	ErrorImpersonationFailed,
	ErrorIncorrectUpdatePropertyCount,
	ErrorIndividualMailboxLimitReached,
	ErrorInsufficientResources,
	ErrorInternalServerError,
	ErrorInternalServerTransientError,
	ErrorInvalidAccessLevel,
	ErrorInvalidAttachmentId,
	ErrorInvalidAttachmentSubfilter,
	ErrorInvalidAttachmentSubfilterTextFilter,
	ErrorInvalidAuthorizationContext,
	ErrorInvalidChangeKey,
	ErrorInvalidClientSecurityContext,
	ErrorInvalidCompleteDate,
	ErrorInvalidCrossForestCredentials,
	ErrorInvalidDelegatePermission,
	ErrorInvalidDelegateUserId,
	ErrorInvalidExchangeImpersonationHeaderData,
	ErrorInvalidExcludesRestriction,
	ErrorInvalidExpressionTypeForSubFilter,
	ErrorInvalidExtendedProperty,
	ErrorInvalidExtendedPropertyValue,
	ErrorInvalidFolderId,
	ErrorInvalidFolderTypeForOperation,
	ErrorInvalidFractionalPagingParameters,
	ErrorInvalidFreeBusyViewType,
	ErrorInvalidId,
	ErrorInvalidIdEmpty,
	ErrorInvalidIdMalformed,
	ErrorInvalidIdMalformedEwsLegacyIdFormat,
	ErrorInvalidIdMonikerTooLong,
	ErrorInvalidIdNotAnItemAttachmentId,
	ErrorInvalidIdReturnedByResolveNames,
	ErrorInvalidIdStoreObjectIdTooLong,
	ErrorInvalidIdTooManyAttachmentLevels,
	ErrorInvalidIdXml,
	ErrorInvalidIndexedPagingParameters,
	ErrorInvalidInternetHeaderChildNodes,
	ErrorInvalidItemForOperationAcceptItem,
	ErrorInvalidItemForOperationCancelItem,
	ErrorInvalidItemForOperationCreateItem,
	ErrorInvalidItemForOperationCreateItemAttachment,
	ErrorInvalidItemForOperationDeclineItem,
	ErrorInvalidItemForOperationExpandDL,
	ErrorInvalidItemForOperationRemoveItem,
	ErrorInvalidItemForOperationSendItem,
	ErrorInvalidItemForOperationTentative,
	ErrorInvalidManagedFolderProperty,
	ErrorInvalidManagedFolderQuota,
	ErrorInvalidManagedFolderSize,
	ErrorInvalidMergedFreeBusyInterval,
	ErrorInvalidNameForNameResolution,
	ErrorInvalidNetworkServiceContext,
	ErrorInvalidOofParameter,
	ErrorInvalidOperation,
	ErrorInvalidPagingMaxRows,
	ErrorInvalidParentFolder,
	ErrorInvalidPercentCompleteValue,
	ErrorInvalidPropertyAppend,
	ErrorInvalidPropertyDelete,
	ErrorInvalidPropertyForExists,
	ErrorInvalidPropertyForOperation,
	ErrorInvalidPropertyRequest,
	ErrorInvalidPropertySet,
	ErrorInvalidPropertyUpdateSentMessage,
	ErrorInvalidProxySecurityContext,
	ErrorInvalidPullSubscriptionId,
	ErrorInvalidPushSubscriptionUrl,
	ErrorInvalidRecipients,
	ErrorInvalidRecipientSubfilter,
	ErrorInvalidRecipientSubfilterComparison,
	ErrorInvalidRecipientSubfilterOrder,
	ErrorInvalidRecipientSubfilterTextFilter,
	ErrorInvalidReferenceItem,
	ErrorInvalidRequest,
	ErrorInvalidRestriction,
	ErrorInvalidRoutingType,
	ErrorInvalidScheduledOofDuration,
	ErrorInvalidSecurityDescriptor,
	ErrorInvalidSendItemSaveSettings,
	ErrorInvalidSerializedAccessToken,
	ErrorInvalidSid,
	ErrorInvalidSmtpAddress,
	ErrorInvalidSubfilterType,
	ErrorInvalidSubfilterTypeNotAttendeeType,
	ErrorInvalidSubfilterTypeNotRecipientType,
	ErrorInvalidSubscription,
	ErrorInvalidSyncStateData,
	ErrorInvalidTimeInterval,
	ErrorInvalidUserOofSettings,
	ErrorInvalidUserPrincipalName,
	ErrorInvalidUserSid,
	ErrorInvalidUserSidMissingUPN,
	ErrorInvalidValueForProperty,
	ErrorInvalidWatermark,
	ErrorIrresolvableConflict,
	ErrorItemCorrupt,
	ErrorItemNotFound,
	ErrorItemPropertyRequestFailed,
	ErrorItemSave,
	ErrorItemSavePropertyError,
	ErrorLegacyMailboxFreeBusyViewTypeNotMerged,
	ErrorLocalServerObjectNotFound,
	ErrorLogonAsNetworkServiceFailed,
	ErrorMailboxConfiguration,
	ErrorMailboxDataArrayEmpty,
	ErrorMailboxDataArrayTooBig,
	ErrorMailboxLogonFailed,
	ErrorMailboxMoveInProgress,
	ErrorMailboxStoreUnavailable,
	ErrorMailRecipientNotFound,
	ErrorManagedFolderAlreadyExists,
	ErrorManagedFolderNotFound,
	ErrorManagedFoldersRootFailure,
	ErrorMeetingSuggestionGenerationFailed,
	ErrorMessageDispositionRequired,
	ErrorMessageSizeExceeded,
	ErrorMimeContentConversionFailed,
	ErrorMimeContentInvalid,
	ErrorMimeContentInvalidBase64String,
	ErrorMissingArgument,
	ErrorMissingEmailAddress,
	ErrorMissingEmailAddressForManagedFolder,
	ErrorMissingInformationEmailAddress,
	ErrorMissingInformationReferenceItemId,
	ErrorMissingItemForCreateItemAttachment,
	ErrorMissingManagedFolderId,
	ErrorMissingRecipients,
	ErrorMoveCopyFailed,
	ErrorMoveDistinguishedFolder,
	ErrorNameResolutionMultipleResults,
	ErrorNameResolutionNoMailbox,
	ErrorNameResolutionNoResults,
	ErrorNoCalendar,
	ErrorNoDestinationCabinetPermissions,
	ErrorNoFolderClassOverride,
	ErrorNoFreeBusyAccess,
	ErrorNonExistentMailbox,
	ErrorNonPrimarySmtpAddress,
	ErrorNoPropertyTagForCustomProperties,
	ErrorNotEnoughMemory,
	ErrorObjectTypeChanged,
	ErrorOccurrenceCrossingBoundary,
	ErrorOccurrenceTimeSpanTooBig,
	ErrorParentFolderIdRequired,
	ErrorParentFolderNotFound,
	ErrorPasswordChangeRequired,
	ErrorPasswordExpired,
	ErrorPropertyUpdate,
	ErrorPropertyValidationFailure,
	ErrorProxyRequestNotAllowed,
	ErrorPublicFolderRequestProcessingFailed,
	ErrorPublicFolderServerNotFound,
	ErrorQueryFilterTooLong,
	ErrorQuotaExceeded,
	ErrorReadEventsFailed,
	ErrorReadReceiptNotPending,
	ErrorRecurrenceEndDateTooBig,
	ErrorRecurrenceHasNoOccurrence,
	ErrorRequestAborted,
	ErrorRequestStreamTooBig,
	ErrorRequiredPropertyMissing,
	ErrorResponseSchemaValidation,
	ErrorRestrictionTooComplex,
	ErrorRestrictionTooLong,
	ErrorResultSetTooBig,
	ErrorSavedItemFolderNotFound,
	ErrorSchemaValidation,
	ErrorSearchFolderNotInitialized,
	ErrorSendAsDenied,
	ErrorSendMeetingCancellationsRequired,
	ErrorSendMeetingInvitationsOrCancellationsRequired,
	ErrorSendMeetingInvitationsRequired,
	ErrorSentMeetingRequestUpdate,
	ErrorSentTaskRequestUpdate,
	ErrorServerBusy,
	ErrorServiceDiscoveryFailed,
	ErrorStaleObject,
	ErrorSubscriptionAccessDenied,
	ErrorSubscriptionDelegateAccessNotSupported,
	ErrorSubscriptionNotFound,
	ErrorSyncFolderNotFound,
	ErrorTimeIntervalTooBig,
	ErrorTimeoutExpired,
	ErrorToFolderNotFound,
	ErrorTokenSerializationDenied,
	ErrorUnableToGetUserOofSettings,
	ErrorUnsupportedCulture,
	ErrorUnsupportedMapiPropertyType,
	ErrorUnsupportedMimeConversion,
	ErrorUnsupportedPathForQuery,
	ErrorUnsupportedPathForSortGroup,
	ErrorUnsupportedPropertyDefinition,
	ErrorUnsupportedQueryFilter,
	ErrorUnsupportedRecurrence,
	ErrorUnsupportedSubFilter,
	ErrorUnsupportedTypeForConversion,
	ErrorUpdatePropertyMismatch,
	ErrorVirusDetected,
	ErrorVirusMessageDeleted,
	ErrorVoiceMailNotImplemented,
	ErrorWebRequestInInvalidState,
	ErrorWin32InteropError,
	ErrorWorkingHoursSaveFailed,
	ErrorWorkingHoursXmlMalformed,
}

var responseCodeSet = make(map[ResponseCode]bool, len(responseCodes))

func init() {
	for _, c := range responseCodes {
		responseCodeSet[c] = true
	}
}
